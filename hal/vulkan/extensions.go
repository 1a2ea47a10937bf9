package vulkan

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/forge/hal"
)

// Extensions carries the optional drivers a Device can use. A nil entry disables the commands
// that depend on it, which then fail with result.FeatureNotPresent.
type Extensions struct {
	DebugUtils       ext_debug_utils.ExtensionDriver
	ObjectNames      ObjectNameDriver
	DynamicState     DynamicStateDriver
	ShaderObjects    ShaderObjectDriver
	DynamicRendering DynamicRenderingDriver
	MeshShading      MeshShadingDriver
}

// ObjectNameDriver attaches debug names to native objects.
type ObjectNameDriver interface {
	SetObjectName(objectType hal.ObjectType, object any, name string) error
}

// DynamicStateDriver records the extended dynamic state commands.
type DynamicStateDriver interface {
	CmdSetRenderState(commandBuffer core1_0.CommandBuffer, state hal.RenderState) error
	CmdSetVertexInput(commandBuffer core1_0.CommandBuffer, bindings []hal.VertexInputBinding, attributes []hal.VertexInputAttribute) error
	CmdSetInputAssembly(commandBuffer core1_0.CommandBuffer, topology hal.PrimitiveTopology, primitiveRestart bool) error
}

// ShaderObject is a driver-side shader object owned by a ShaderObjectDriver.
type ShaderObject interface{}

// ShaderObjectDriver creates and binds linkable shader objects.
type ShaderObjectDriver interface {
	CreateShader(info hal.ShaderCreateInfo, setLayouts []core1_0.DescriptorSetLayout) (ShaderObject, error)
	DestroyShader(shader ShaderObject)
	CmdBindShaders(commandBuffer core1_0.CommandBuffer, stages []hal.ShaderStageFlags, shaders []ShaderObject) error
}

// RenderingAttachment is a dynamic rendering attachment with its view resolved.
type RenderingAttachment struct {
	ImageView   core1_0.ImageView
	ImageLayout hal.ImageLayout
	LoadOp      hal.AttachmentLoadOp
	StoreOp     hal.AttachmentStoreOp
	ClearValue  hal.ClearValue
}

type RenderingInfo struct {
	RenderArea        hal.Rect2D
	LayerCount        int
	ColorAttachments  []RenderingAttachment
	DepthAttachment   *RenderingAttachment
	StencilAttachment *RenderingAttachment
}

// DynamicRenderingDriver begins and ends render-pass-less rendering.
type DynamicRenderingDriver interface {
	CmdBeginRendering(commandBuffer core1_0.CommandBuffer, info RenderingInfo) error
	CmdEndRendering(commandBuffer core1_0.CommandBuffer) error
}

type MeshShadingDriver interface {
	CmdDrawMeshTasks(commandBuffer core1_0.CommandBuffer, groupCountX, groupCountY, groupCountZ int) error
}
