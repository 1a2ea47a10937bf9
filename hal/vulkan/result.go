package vulkan

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/forge/result"
)

var resultCodes = map[common.VkResult]result.Code{
	core1_0.VKSuccess:                  result.Success,
	core1_0.VKNotReady:                 result.NotReady,
	core1_0.VKTimeout:                  result.Timeout,
	core1_0.VKErrorOutOfHostMemory:     result.OutOfMemory,
	core1_0.VKErrorOutOfDeviceMemory:   result.OutOfMemory,
	core1_0.VKErrorFeatureNotPresent:   result.FeatureNotPresent,
	core1_0.VKErrorExtensionNotPresent: result.FeatureNotPresent,
	khr_swapchain.VKErrorOutOfDate:     result.OutOfDate,
	khr_swapchain.VKSuboptimal:         result.Suboptimal,
}

// codeOf maps a driver result to a result.Code. Unlisted failures are RuntimeError.
func codeOf(res common.VkResult) result.Code {
	code, ok := resultCodes[res]
	if !ok {
		return result.RuntimeError
	}
	return code
}

// check converts a driver call outcome into a result error, or nil on success.
func check(res common.VkResult, err error, operation string) error {
	if err == nil {
		code := codeOf(res)
		if code == result.Success {
			return nil
		}
		return result.Newf(code, "%s: %v", operation, res)
	}
	code := codeOf(res)
	if code == result.Success {
		code = result.RuntimeError
	}
	return result.Wrap(err, code, operation)
}

func featureNotPresent(feature string) error {
	return result.Newf(result.FeatureNotPresent, "%s is not available on this device", feature)
}
