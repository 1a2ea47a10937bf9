package vulkan

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/core1_2"
	"github.com/vkngwrapper/forge/hal"
)

func (d *Device) CreateDescriptorSetLayout(info hal.DescriptorSetLayoutCreateInfo) (hal.DescriptorSetLayout, error) {
	createInfo := core1_0.DescriptorSetLayoutCreateInfo{
		Flags: core1_0.DescriptorSetLayoutCreateFlags(info.Flags),
	}

	var bindingFlags []core1_2.DescriptorBindingFlags
	hasBindingFlags := false
	for _, binding := range info.Bindings {
		createInfo.Bindings = append(createInfo.Bindings, core1_0.DescriptorSetLayoutBinding{
			Binding:         binding.Binding,
			DescriptorType:  core1_0.DescriptorType(binding.DescriptorType),
			DescriptorCount: binding.DescriptorCount,
			StageFlags:      core1_0.ShaderStageFlags(binding.StageFlags),
		})
		bindingFlags = append(bindingFlags, core1_2.DescriptorBindingFlags(binding.BindingFlags))
		hasBindingFlags = hasBindingFlags || binding.BindingFlags != 0
	}

	if hasBindingFlags {
		if !d.features.DescriptorIndexing {
			return 0, featureNotPresent("descriptor indexing")
		}
		flagsInfo := core1_2.DescriptorSetLayoutBindingFlagsCreateInfo{
			BindingFlags: bindingFlags,
		}
		flagsInfo.Next = createInfo.Next
		createInfo.Next = flagsInfo
	}

	layout, res, err := d.driver.CreateDescriptorSetLayout(nil, createInfo)
	if err := check(res, err, "CreateDescriptorSetLayout"); err != nil {
		return 0, err
	}
	return hal.DescriptorSetLayout(d.setLayouts.insert(layout)), nil
}

func (d *Device) DestroyDescriptorSetLayout(layout hal.DescriptorSetLayout) {
	native, ok := d.setLayouts.remove(uint64(layout))
	if !ok {
		return
	}
	d.driver.DestroyDescriptorSetLayout(native, nil)
}

func (d *Device) CreateDescriptorPool(info hal.DescriptorPoolCreateInfo) (hal.DescriptorPool, error) {
	createInfo := core1_0.DescriptorPoolCreateInfo{
		Flags:   core1_0.DescriptorPoolCreateFlags(info.Flags),
		MaxSets: info.MaxSets,
	}
	for _, size := range info.PoolSizes {
		createInfo.PoolSizes = append(createInfo.PoolSizes, core1_0.DescriptorPoolSize{
			Type:            core1_0.DescriptorType(size.Type),
			DescriptorCount: size.DescriptorCount,
		})
	}

	pool, res, err := d.driver.CreateDescriptorPool(nil, createInfo)
	if err := check(res, err, "CreateDescriptorPool"); err != nil {
		return 0, err
	}
	return hal.DescriptorPool(d.descriptorPools.insert(pool)), nil
}

func (d *Device) DestroyDescriptorPool(pool hal.DescriptorPool) {
	native, ok := d.descriptorPools.remove(uint64(pool))
	if !ok {
		return
	}
	d.driver.DestroyDescriptorPool(native, nil)
}

func (d *Device) AllocateDescriptorSet(pool hal.DescriptorPool, layout hal.DescriptorSetLayout) (hal.DescriptorSet, error) {
	nativePool, _ := d.descriptorPools.get(uint64(pool))
	nativeLayout, _ := d.setLayouts.get(uint64(layout))

	sets, res, err := d.driver.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: nativePool,
		SetLayouts:     []core1_0.DescriptorSetLayout{nativeLayout},
	})
	if err := check(res, err, "AllocateDescriptorSets"); err != nil {
		return 0, err
	}
	return hal.DescriptorSet(d.descriptorSets.insert(sets[0])), nil
}

func (d *Device) FreeDescriptorSet(pool hal.DescriptorPool, set hal.DescriptorSet) error {
	native, ok := d.descriptorSets.remove(uint64(set))
	if !ok {
		return nil
	}
	res, err := d.driver.FreeDescriptorSets(native)
	return check(res, err, "FreeDescriptorSets")
}

func (d *Device) UpdateDescriptorSets(writes ...hal.WriteDescriptorSet) error {
	nativeWrites := make([]core1_0.WriteDescriptorSet, 0, len(writes))
	for _, write := range writes {
		set, ok := d.descriptorSets.get(uint64(write.DstSet))
		if !ok {
			continue
		}

		nativeWrite := core1_0.WriteDescriptorSet{
			DstSet:          set,
			DstBinding:      write.DstBinding,
			DstArrayElement: write.DstArrayElement,
			DescriptorType:  core1_0.DescriptorType(write.DescriptorType),
		}
		for _, image := range write.ImageInfo {
			sampler, _ := d.samplers.get(uint64(image.Sampler))
			view, _ := d.imageViews.get(uint64(image.ImageView))
			nativeWrite.ImageInfo = append(nativeWrite.ImageInfo, core1_0.DescriptorImageInfo{
				Sampler:     sampler,
				ImageView:   view,
				ImageLayout: core1_0.ImageLayout(image.ImageLayout),
			})
		}
		for _, buffer := range write.BufferInfo {
			native, _ := d.buffers.get(uint64(buffer.Buffer))
			size := buffer.Range
			if size == hal.WholeSize {
				size = common.WholeSize
			}
			nativeWrite.BufferInfo = append(nativeWrite.BufferInfo, core1_0.DescriptorBufferInfo{
				Buffer: native,
				Offset: buffer.Offset,
				Range:  size,
			})
		}
		nativeWrites = append(nativeWrites, nativeWrite)
	}

	err := d.driver.UpdateDescriptorSets(nativeWrites, nil)
	return check(core1_0.VKSuccess, err, "UpdateDescriptorSets")
}

func pushConstantRanges(ranges []hal.PushConstantRange) []core1_0.PushConstantRange {
	out := make([]core1_0.PushConstantRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, core1_0.PushConstantRange{
			StageFlags: core1_0.ShaderStageFlags(r.StageFlags),
			Offset:     r.Offset,
			Size:       r.Size,
		})
	}
	return out
}

func (d *Device) CreatePipelineLayout(info hal.PipelineLayoutCreateInfo) (hal.PipelineLayout, error) {
	layout, res, err := d.driver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{
		SetLayouts:         d.setLayouts.lookup(handles(info.SetLayouts)),
		PushConstantRanges: pushConstantRanges(info.PushConstantRanges),
	})
	if err := check(res, err, "CreatePipelineLayout"); err != nil {
		return 0, err
	}
	return hal.PipelineLayout(d.pipelineLayouts.insert(layout)), nil
}

func (d *Device) DestroyPipelineLayout(layout hal.PipelineLayout) {
	native, ok := d.pipelineLayouts.remove(uint64(layout))
	if !ok {
		return
	}
	d.driver.DestroyPipelineLayout(native, nil)
}

func (d *Device) CreateShader(info hal.ShaderCreateInfo) (hal.Shader, error) {
	if d.extensions.ShaderObjects == nil {
		return 0, featureNotPresent("shader objects")
	}
	shader, err := d.extensions.ShaderObjects.CreateShader(info, d.setLayouts.lookup(handles(info.SetLayouts)))
	if err != nil {
		return 0, check(core1_0.VKErrorUnknown, err, "CreateShader")
	}
	return hal.Shader(d.shaders.insert(shader)), nil
}

func (d *Device) DestroyShader(shader hal.Shader) {
	native, ok := d.shaders.remove(uint64(shader))
	if !ok || d.extensions.ShaderObjects == nil {
		return
	}
	d.extensions.ShaderObjects.DestroyShader(native)
}
