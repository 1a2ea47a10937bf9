package gpu

import (
	"log/slog"
	"math/bits"

	"github.com/vkngwrapper/forge/gpu/internal/objpool"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/result"
)

func (d *Device) staleObject(kind ResourceType, name string) error {
	return d.assertf(false, "%s %q was already destroyed or is not owned by this device", kind, name)
}

// CreateBuffer creates a buffer and backs it with memory from info.Domain. Every buffer can be
// queried for its device address.
func (d *Device) CreateBuffer(info BufferCreateInfo, name string) (*Buffer, error) {
	d.logger.Debug("Device::CreateBuffer")

	err := d.assertf(info.Size > 0, "buffer %q must have a positive size", name)
	if err != nil {
		return nil, err
	}
	info.Usage |= hal.BufferUsageShaderDeviceAddress

	native, err := d.driver.CreateBuffer(hal.BufferCreateInfo{Size: info.Size, Usage: info.Usage})
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create buffer %q", name)
	}

	buffer := &Buffer{native: native, info: info}
	buffer.name = name
	buffer.handle = d.buffers.Insert(buffer)

	err = d.allocator.AllocateBuffer(buffer)
	if err != nil {
		_, _ = d.buffers.Remove(buffer.handle)
		d.driver.DestroyBuffer(native)
		return nil, err
	}

	buffer.address, err = d.driver.GetBufferDeviceAddress(native)
	if err != nil {
		d.logger.Warn("Device::CreateBuffer", slog.String("name", name), slog.String("message", "failed to query device address"), slog.Any("error", err))
	}

	d.stats.trackCreated(ResourceTypeBuffer)
	d.nameObject(hal.ObjectTypeBuffer, uint64(native), name)
	return buffer, nil
}

func (d *Device) DestroyBuffer(buffer *Buffer) error {
	d.logger.Debug("Device::DestroyBuffer")

	err := d.assertf(buffer != nil, "DestroyBuffer requires a buffer")
	if err != nil {
		return err
	}
	if _, err = d.buffers.Remove(buffer.handle); err != nil {
		return d.staleObject(ResourceTypeBuffer, buffer.name)
	}

	d.releaseBuffer(buffer)
	return nil
}

func (d *Device) releaseBuffer(buffer *Buffer) {
	d.driver.DestroyBuffer(buffer.native)
	err := d.allocator.Free(buffer)
	if err != nil {
		d.logger.Warn("Device::DestroyBuffer", slog.String("name", buffer.name), slog.Any("error", err))
	}
	buffer.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeBuffer)
}

// CreateImage creates an optimally tiled image in the undefined layout and backs it with memory
// from info.Domain. Images with a sampled, storage or attachment usage get a default view over
// every mip level and layer.
func (d *Device) CreateImage(info ImageCreateInfo, name string) (*Image, error) {
	d.logger.Debug("Device::CreateImage")

	if info.Extent.Depth == 0 {
		info.Extent.Depth = 1
	}
	if info.MipLevels == 0 {
		info.MipLevels = 1
	}
	if info.ArraySize == 0 {
		info.ArraySize = 1
	}
	if info.Samples == 0 {
		info.Samples = hal.SampleCount1
	}
	if info.ImageType == hal.ImageType1D && info.Extent.Height > 1 {
		info.ImageType = hal.ImageType2D
	}

	err := d.assertf(info.Extent.Width > 0 && info.Extent.Height > 0 && info.Extent.Depth > 0,
		"image %q must have a positive extent, got %dx%dx%d", name, info.Extent.Width, info.Extent.Height, info.Extent.Depth)
	if err != nil {
		return nil, err
	}
	err = d.assertf(info.Format != hal.FormatUndefined, "image %q must have a format", name)
	if err != nil {
		return nil, err
	}
	err = d.assertf(info.Usage != 0, "image %q must have a usage", name)
	if err != nil {
		return nil, err
	}

	native, err := d.driver.CreateImage(hal.ImageCreateInfo{
		Flags:         info.Flags,
		ImageType:     info.ImageType,
		Format:        info.Format,
		Extent:        info.Extent,
		MipLevels:     info.MipLevels,
		ArrayLayers:   info.ArraySize,
		Samples:       info.Samples,
		Tiling:        hal.ImageTilingOptimal,
		Usage:         info.Usage,
		InitialLayout: hal.ImageLayoutUndefined,
	})
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create image %q", name)
	}

	image := &Image{native: native, info: info}
	image.name = name
	image.handle = d.images.Insert(image)

	err = d.allocator.AllocateImage(image)
	if err != nil {
		_, _ = d.images.Remove(image.handle)
		d.driver.DestroyImage(native)
		return nil, err
	}

	d.stats.trackCreated(ResourceTypeImage)
	d.nameObject(hal.ObjectTypeImage, uint64(native), name)

	if info.Usage&viewableImageUsage != 0 {
		image.view, err = d.CreateImageView(ImageViewCreateInfo{
			Image:    image,
			ViewType: image.defaultViewType(),
		}, name)
		if err != nil {
			_ = d.DestroyImage(image)
			return nil, err
		}
	}

	return image, nil
}

// DestroyImage destroys image along with its default view.
func (d *Device) DestroyImage(image *Image) error {
	d.logger.Debug("Device::DestroyImage")

	err := d.assertf(image != nil, "DestroyImage requires an image")
	if err != nil {
		return err
	}
	if _, err = d.images.Remove(image.handle); err != nil {
		return d.staleObject(ResourceTypeImage, image.name)
	}

	if image.view != nil {
		if _, err = d.imageViews.Remove(image.view.handle); err == nil {
			d.releaseImageView(image.view)
		}
		image.view = nil
	}

	d.releaseImage(image)
	return nil
}

func (d *Device) releaseImage(image *Image) {
	d.driver.DestroyImage(image.native)
	err := d.allocator.Free(image)
	if err != nil {
		d.logger.Warn("Device::DestroyImage", slog.String("name", image.name), slog.Any("error", err))
	}
	image.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeImage)
}

// CreateImageView creates a view of info.Image. A zero Format uses the image's format and zero
// counts cover the remaining levels and layers. Views of depth-stencil images see the depth
// aspect.
func (d *Device) CreateImageView(info ImageViewCreateInfo, name string) (*ImageView, error) {
	d.logger.Debug("Device::CreateImageView")

	err := d.assertf(info.Image != nil && info.Image.IsValid(), "image view %q requires a live image", name)
	if err != nil {
		return nil, err
	}

	image := info.Image
	if info.Format == hal.FormatUndefined {
		info.Format = image.info.Format
	}
	if info.LevelCount == 0 {
		info.LevelCount = image.info.MipLevels - info.BaseMipLevel
	}
	if info.LayerCount == 0 {
		info.LayerCount = image.info.ArraySize - info.BaseArrayLayer
	}

	err = d.assertf(info.BaseMipLevel >= 0 && info.LevelCount > 0 && info.BaseMipLevel+info.LevelCount <= image.info.MipLevels,
		"image view %q covers mip levels outside its image", name)
	if err != nil {
		return nil, err
	}
	err = d.assertf(info.BaseArrayLayer >= 0 && info.LayerCount > 0 && info.BaseArrayLayer+info.LayerCount <= image.info.ArraySize,
		"image view %q covers array layers outside its image", name)
	if err != nil {
		return nil, err
	}

	aspects := info.Format.Aspects()
	if aspects&hal.ImageAspectDepth != 0 {
		aspects = hal.ImageAspectDepth
	}

	native, err := d.driver.CreateImageView(hal.ImageViewCreateInfo{
		Image:    image.native,
		ViewType: info.ViewType,
		Format:   info.Format,
		SubresourceRange: hal.ImageSubresourceRange{
			AspectMask:     aspects,
			BaseMipLevel:   info.BaseMipLevel,
			LevelCount:     info.LevelCount,
			BaseArrayLayer: info.BaseArrayLayer,
			LayerCount:     info.LayerCount,
		},
	})
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create image view %q", name)
	}

	view := &ImageView{native: native, info: info}
	view.name = name
	view.handle = d.imageViews.Insert(view)

	d.stats.trackCreated(ResourceTypeImageView)
	d.nameObject(hal.ObjectTypeImageView, uint64(native), name)
	return view, nil
}

// DestroyImageView destroys a view created with CreateImageView. Default views belong to their
// image and are destroyed with it.
func (d *Device) DestroyImageView(view *ImageView) error {
	d.logger.Debug("Device::DestroyImageView")

	err := d.assertf(view != nil, "DestroyImageView requires a view")
	if err != nil {
		return err
	}
	err = d.assertf(view.info.Image == nil || view.info.Image.view != view, "image view %q is the default view of its image", view.name)
	if err != nil {
		return err
	}
	if _, err = d.imageViews.Remove(view.handle); err != nil {
		return d.staleObject(ResourceTypeImageView, view.name)
	}

	d.releaseImageView(view)
	return nil
}

func (d *Device) releaseImageView(view *ImageView) {
	d.driver.DestroyImageView(view.native)
	view.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeImageView)
}

// CreateSampler returns the preset sampler equal to info when there is one, and creates a new
// sampler otherwise.
func (d *Device) CreateSampler(info SamplerCreateInfo, name string) (*Sampler, error) {
	d.logger.Debug("Device::CreateSampler")

	if d.samplers != nil {
		if preset := d.samplers.FindMatchingSampler(info); preset != nil {
			return preset, nil
		}
	}
	return d.createSamplerObject(info, name)
}

// DestroySampler destroys sampler. Preset samplers are owned by the sampler pool and ignored.
func (d *Device) DestroySampler(sampler *Sampler) error {
	d.logger.Debug("Device::DestroySampler")

	err := d.assertf(sampler != nil, "DestroySampler requires a sampler")
	if err != nil {
		return err
	}
	if sampler.preset {
		return nil
	}
	return d.destroySamplerObject(sampler)
}

func (d *Device) createSamplerObject(info SamplerCreateInfo, name string) (*Sampler, error) {
	native, err := d.driver.CreateSampler(info.toNative(d.features.Enabled))
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create sampler %q", name)
	}

	sampler := &Sampler{native: native, info: info}
	sampler.name = name
	sampler.handle = d.samplerObjects.Insert(sampler)

	d.stats.trackCreated(ResourceTypeSampler)
	d.nameObject(hal.ObjectTypeSampler, uint64(native), name)
	return sampler, nil
}

func (d *Device) destroySamplerObject(sampler *Sampler) error {
	if _, err := d.samplerObjects.Remove(sampler.handle); err != nil {
		return d.staleObject(ResourceTypeSampler, sampler.name)
	}
	d.releaseSampler(sampler)
	return nil
}

func (d *Device) releaseSampler(sampler *Sampler) {
	d.driver.DestroySampler(sampler.native)
	sampler.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeSampler)
}

// CreateShader registers the code of a single stage. Native shader objects are created when
// the stage is linked into a program.
func (d *Device) CreateShader(info ShaderCreateInfo, name string) (*Shader, error) {
	d.logger.Debug("Device::CreateShader")

	err := d.assertf(len(info.Code) > 0, "shader %q has no code", name)
	if err != nil {
		return nil, err
	}
	err = d.assertf(bits.OnesCount32(uint32(info.Stage)) == 1, "shader %q must have exactly one stage, got %s", name, info.Stage)
	if err != nil {
		return nil, err
	}
	if info.EntryPoint == "" {
		info.EntryPoint = "main"
	}

	shader := &Shader{info: info}
	shader.name = name
	shader.handle = d.shaders.Insert(shader)

	d.stats.trackCreated(ResourceTypeShader)
	return shader, nil
}

func (d *Device) DestroyShader(shader *Shader) error {
	d.logger.Debug("Device::DestroyShader")

	err := d.assertf(shader != nil, "DestroyShader requires a shader")
	if err != nil {
		return err
	}
	if _, err = d.shaders.Remove(shader.handle); err != nil {
		return d.staleObject(ResourceTypeShader, shader.name)
	}

	shader.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeShader)
	return nil
}

func (d *Device) CreateDescriptorSetLayout(info DescriptorSetLayoutCreateInfo, name string) (*DescriptorSetLayout, error) {
	d.logger.Debug("Device::CreateDescriptorSetLayout")

	err := d.assertf(len(info.Bindings) > 0, "descriptor set layout %q has no bindings", name)
	if err != nil {
		return nil, err
	}

	var seen uint32
	for _, binding := range info.Bindings {
		err = d.assertf(binding.Binding >= 0 && binding.Binding < MaxBindings, "binding %d of layout %q is out of range", binding.Binding, name)
		if err != nil {
			return nil, err
		}
		err = d.assertf(seen&(1<<binding.Binding) == 0, "binding %d of layout %q is declared twice", binding.Binding, name)
		if err != nil {
			return nil, err
		}
		err = d.assertf(binding.DescriptorCount > 0, "binding %d of layout %q has no descriptors", binding.Binding, name)
		if err != nil {
			return nil, err
		}
		seen |= 1 << binding.Binding
	}

	native, err := d.driver.CreateDescriptorSetLayout(hal.DescriptorSetLayoutCreateInfo{
		Flags:    info.Flags,
		Bindings: info.Bindings,
	})
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create descriptor set layout %q", name)
	}

	layout := newDescriptorSetLayout(d.logger, d.driver, native, info, d.stats, d.options.Synchronized)
	layout.name = name
	layout.handle = d.setLayouts.Insert(layout)

	d.stats.trackCreated(ResourceTypeDescriptorSetLayout)
	d.nameObject(hal.ObjectTypeDescriptorSetLayout, uint64(native), name)
	return layout, nil
}

// DestroyDescriptorSetLayout destroys layout along with its pools and every set allocated from
// them.
func (d *Device) DestroyDescriptorSetLayout(layout *DescriptorSetLayout) error {
	d.logger.Debug("Device::DestroyDescriptorSetLayout")

	err := d.assertf(layout != nil, "DestroyDescriptorSetLayout requires a layout")
	if err != nil {
		return err
	}
	if _, err = d.setLayouts.Remove(layout.handle); err != nil {
		return d.staleObject(ResourceTypeDescriptorSetLayout, layout.name)
	}

	d.releaseDescriptorSetLayout(layout)
	return nil
}

func (d *Device) releaseDescriptorSetLayout(layout *DescriptorSetLayout) {
	layout.destroy()
	layout.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeDescriptorSetLayout)
}

// CreatePipelineLayout creates a pipeline layout. The set layouts are borrowed and must outlive
// it.
func (d *Device) CreatePipelineLayout(info PipelineLayoutCreateInfo, name string) (*PipelineLayout, error) {
	d.logger.Debug("Device::CreatePipelineLayout")

	err := d.assertf(len(info.SetLayouts) <= MaxDescriptorSets, "pipeline layout %q has %d set layouts, more than %d", name, len(info.SetLayouts), MaxDescriptorSets)
	if err != nil {
		return nil, err
	}

	natives := make([]hal.DescriptorSetLayout, 0, len(info.SetLayouts))
	for index, setLayout := range info.SetLayouts {
		err = d.assertf(setLayout != nil && setLayout.IsValid(), "set layout %d of pipeline layout %q is not live", index, name)
		if err != nil {
			return nil, err
		}
		natives = append(natives, setLayout.native)
	}

	pushConstants := info.PushConstantRange
	err = d.assertf(pushConstants.Offset%4 == 0 && pushConstants.Size%4 == 0, "push constant range of %q must be 4 byte aligned", name)
	if err != nil {
		return nil, err
	}
	err = d.assertf(pushConstants.Offset+pushConstants.Size <= PushConstantSize && pushConstants.Size <= d.properties.Limits.MaxPushConstantsSize,
		"push constant range of %q ends at %d, past the %d byte limit", name, pushConstants.Offset+pushConstants.Size, min(PushConstantSize, d.properties.Limits.MaxPushConstantsSize))
	if err != nil {
		return nil, err
	}

	nativeInfo := hal.PipelineLayoutCreateInfo{SetLayouts: natives}
	if pushConstants.Size > 0 {
		nativeInfo.PushConstantRanges = []hal.PushConstantRange{pushConstants}
	}

	native, err := d.driver.CreatePipelineLayout(nativeInfo)
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create pipeline layout %q", name)
	}

	layout := &PipelineLayout{native: native, info: info}
	layout.name = name
	layout.handle = d.pipelineLayouts.Insert(layout)

	d.stats.trackCreated(ResourceTypePipelineLayout)
	d.nameObject(hal.ObjectTypePipelineLayout, uint64(native), name)
	return layout, nil
}

func (d *Device) DestroyPipelineLayout(layout *PipelineLayout) error {
	d.logger.Debug("Device::DestroyPipelineLayout")

	err := d.assertf(layout != nil, "DestroyPipelineLayout requires a layout")
	if err != nil {
		return err
	}
	if _, err = d.pipelineLayouts.Remove(layout.handle); err != nil {
		return d.staleObject(ResourceTypePipelineLayout, layout.name)
	}

	d.releasePipelineLayout(layout)
	return nil
}

func (d *Device) releasePipelineLayout(layout *PipelineLayout) {
	d.driver.DestroyPipelineLayout(layout.native)
	layout.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypePipelineLayout)
}

// programStageOrder is the order linked stages run in.
var programStageOrder = []hal.ShaderStageFlags{
	hal.ShaderStageVertex,
	hal.ShaderStageTessellationControl,
	hal.ShaderStageTessellationEvaluation,
	hal.ShaderStageGeometry,
	hal.ShaderStageTask,
	hal.ShaderStageMesh,
	hal.ShaderStageFragment,
	hal.ShaderStageCompute,
}

const tessellationStages = hal.ShaderStageTessellationControl | hal.ShaderStageTessellationEvaluation

// programType classifies a set of linked stages, or reports PipelineTypeUndefined for a
// combination that cannot form a program.
func programType(stages hal.ShaderStageFlags) PipelineType {
	switch {
	case stages == hal.ShaderStageCompute:
		return PipelineTypeCompute
	case stages&^hal.ShaderStageTask == hal.ShaderStageMesh|hal.ShaderStageFragment:
		return PipelineTypeMesh
	}

	optional := stages &^ (hal.ShaderStageVertex | hal.ShaderStageFragment)
	if stages&(hal.ShaderStageVertex|hal.ShaderStageFragment) != hal.ShaderStageVertex|hal.ShaderStageFragment ||
		optional&^(tessellationStages|hal.ShaderStageGeometry) != 0 {
		return PipelineTypeUndefined
	}
	if tess := optional & tessellationStages; tess != 0 && tess != tessellationStages {
		return PipelineTypeUndefined
	}
	return PipelineTypeGeometry
}

// CreateProgram links shaders into a program and creates a native shader object per stage.
func (d *Device) CreateProgram(info ProgramCreateInfo, name string) (*ShaderProgram, error) {
	d.logger.Debug("Device::CreateProgram")

	err := d.assertf(info.PipelineLayout != nil && info.PipelineLayout.IsValid(), "program %q requires a live pipeline layout", name)
	if err != nil {
		return nil, err
	}
	err = d.assertf(len(info.Shaders) > 0, "program %q has no shaders", name)
	if err != nil {
		return nil, err
	}

	shaders := make(map[hal.ShaderStageFlags]*Shader, len(info.Shaders))
	var stageMask hal.ShaderStageFlags
	for _, shader := range info.Shaders {
		err = d.assertf(shader != nil && shader.IsValid(), "program %q links a shader that is not live", name)
		if err != nil {
			return nil, err
		}
		if stageMask&shader.Stage() != 0 {
			return nil, result.Newf(result.RuntimeError, "program %q links more than one %s shader", name, shader.Stage())
		}
		stageMask |= shader.Stage()
		shaders[shader.Stage()] = shader
	}

	pipelineType := programType(stageMask)
	if pipelineType == PipelineTypeUndefined {
		return nil, result.Newf(result.RuntimeError, "program %q links an unsupported stage combination %s", name, stageMask)
	}

	features := d.features.Enabled
	switch {
	case pipelineType == PipelineTypeMesh && !features.MeshShader,
		stageMask&hal.ShaderStageTask != 0 && !features.TaskShader,
		stageMask&tessellationStages != 0 && !features.TessellationShader,
		stageMask&hal.ShaderStageGeometry != 0 && !features.GeometryShader:
		return nil, result.Newf(result.FeatureNotPresent, "program %q uses stages %s the device does not support", name, stageMask)
	}

	stages := make([]hal.ShaderStageFlags, 0, len(shaders))
	for _, stage := range programStageOrder {
		if stageMask&stage != 0 {
			stages = append(stages, stage)
		}
	}

	layout := info.PipelineLayout
	setLayouts := make([]hal.DescriptorSetLayout, 0, layout.SetLayoutCount())
	for _, setLayout := range layout.SetLayouts() {
		setLayouts = append(setLayouts, setLayout.native)
	}
	var pushConstants []hal.PushConstantRange
	if layout.info.PushConstantRange.Size > 0 {
		pushConstants = []hal.PushConstantRange{layout.info.PushConstantRange}
	}

	err = d.assertf(pipelineType == PipelineTypeGeometry || info.VertexInput.empty(), "program %q is not a vertex program but has a vertex input", name)
	if err != nil {
		return nil, err
	}

	program := &ShaderProgram{
		pipelineType: pipelineType,
		layout:       layout,
		stages:       stages,
		objects:      make(map[hal.ShaderStageFlags]hal.Shader, len(stages)),
		vertexInput:  info.VertexInput.clone(),
	}
	program.name = name

	for index, stage := range stages {
		var next hal.ShaderStageFlags
		if index+1 < len(stages) {
			next = stages[index+1]
		}

		shader := shaders[stage]
		object, err := d.driver.CreateShader(hal.ShaderCreateInfo{
			Stage:              stage,
			NextStage:          next,
			Code:               shader.Code(),
			EntryPoint:         shader.EntryPoint(),
			SetLayouts:         setLayouts,
			PushConstantRanges: pushConstants,
		})
		if err != nil {
			d.destroyShaderObjects(program)
			return nil, result.Wrapf(err, result.RuntimeError, "failed to create %s shader object for program %q", stage, name)
		}
		program.objects[stage] = object
		d.nameObject(hal.ObjectTypeShader, uint64(object), name)
	}

	program.handle = d.programs.Insert(program)
	d.stats.trackCreated(ResourceTypeShaderProgram)
	return program, nil
}

// DestroyProgram destroys program's shader objects. Its shaders and pipeline layout are left
// alone.
func (d *Device) DestroyProgram(program *ShaderProgram) error {
	d.logger.Debug("Device::DestroyProgram")

	err := d.assertf(program != nil, "DestroyProgram requires a program")
	if err != nil {
		return err
	}
	if _, err = d.programs.Remove(program.handle); err != nil {
		return d.staleObject(ResourceTypeShaderProgram, program.name)
	}

	d.releaseProgram(program)
	return nil
}

func (d *Device) destroyShaderObjects(program *ShaderProgram) {
	for stage, object := range program.objects {
		d.driver.DestroyShader(object)
		delete(program.objects, stage)
	}
}

func (d *Device) releaseProgram(program *ShaderProgram) {
	d.destroyShaderObjects(program)
	program.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeShaderProgram)
}

func (d *Device) CreateQueryPool(info QueryPoolCreateInfo, name string) (*QueryPool, error) {
	d.logger.Debug("Device::CreateQueryPool")

	err := d.assertf(info.QueryCount > 0, "query pool %q must hold at least one query", name)
	if err != nil {
		return nil, err
	}
	if info.Type == hal.QueryTypePipelineStatistics && !d.features.Enabled.PipelineStatistics {
		return nil, result.Newf(result.FeatureNotPresent, "query pool %q needs pipeline statistics queries", name)
	}

	native, err := d.driver.CreateQueryPool(hal.QueryPoolCreateInfo{
		QueryType:          info.Type,
		QueryCount:         info.QueryCount,
		PipelineStatistics: info.PipelineStatistics,
	})
	if err != nil {
		return nil, result.Wrapf(err, result.RuntimeError, "failed to create query pool %q", name)
	}

	pool := &QueryPool{native: native, info: info}
	pool.name = name
	pool.handle = d.queryPools.Insert(pool)

	d.stats.trackCreated(ResourceTypeQueryPool)
	d.nameObject(hal.ObjectTypeQueryPool, uint64(native), name)
	return pool, nil
}

func (d *Device) DestroyQueryPool(pool *QueryPool) error {
	d.logger.Debug("Device::DestroyQueryPool")

	err := d.assertf(pool != nil, "DestroyQueryPool requires a pool")
	if err != nil {
		return err
	}
	if _, err = d.queryPools.Remove(pool.handle); err != nil {
		return d.staleObject(ResourceTypeQueryPool, pool.name)
	}

	d.releaseQueryPool(pool)
	return nil
}

func (d *Device) releaseQueryPool(pool *QueryPool) {
	d.driver.DestroyQueryPool(pool.native)
	pool.handle = objpool.Handle{}
	d.stats.trackDestroyed(ResourceTypeQueryPool)
}
