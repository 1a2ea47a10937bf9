package gpu

import (
	"github.com/vkngwrapper/forge/gpu/internal/objpool"
	"github.com/vkngwrapper/forge/hal"
)

// resource is the bookkeeping shared by everything a Device creates. The handle is the object's
// slot in its pool and is zeroed on destroy, so a second destroy is detected.
type resource struct {
	handle objpool.Handle
	name   string
}

func (r *resource) DebugName() string { return r.name }

// IsValid reports whether the object is still owned by its device.
func (r *resource) IsValid() bool { return r.handle.IsValid() }

type BufferCreateInfo struct {
	Size   int
	Usage  hal.BufferUsageFlags
	Domain MemoryDomain
}

type Buffer struct {
	resource
	native  hal.Buffer
	info    BufferCreateInfo
	address uint64
}

func (b *Buffer) Native() hal.Buffer           { return b.native }
func (b *Buffer) CreateInfo() BufferCreateInfo { return b.info }
func (b *Buffer) Size() int                    { return b.info.Size }
func (b *Buffer) Usage() hal.BufferUsageFlags  { return b.info.Usage }
func (b *Buffer) Domain() MemoryDomain         { return b.info.Domain }
func (b *Buffer) DeviceAddress() uint64        { return b.address }
func (b *Buffer) allocationKey() allocationKey { return allocationKey{kind: ResourceTypeBuffer, handle: b.handle} }
func (b *Buffer) allocationName() string       { return b.name }
func (b *Buffer) allocationType() ResourceType { return ResourceTypeBuffer }

type ImageCreateInfo struct {
	Extent    hal.Extent3D
	Flags     hal.ImageCreateFlags
	Usage     hal.ImageUsageFlags
	Domain    MemoryDomain
	ImageType hal.ImageType
	Format    hal.Format
	MipLevels int
	ArraySize int
	Samples   hal.SampleCountFlags
}

const viewableImageUsage = hal.ImageUsageSampled | hal.ImageUsageStorage | hal.ImageUsageColorAttachment |
	hal.ImageUsageDepthStencilAttachment | hal.ImageUsageInputAttachment

type Image struct {
	resource
	native hal.Image
	info   ImageCreateInfo
	view   *ImageView
}

func (i *Image) Native() hal.Image            { return i.native }
func (i *Image) CreateInfo() ImageCreateInfo  { return i.info }
func (i *Image) Width() int                   { return i.info.Extent.Width }
func (i *Image) Height() int                  { return i.info.Extent.Height }
func (i *Image) Depth() int                   { return i.info.Extent.Depth }
func (i *Image) MipLevels() int               { return i.info.MipLevels }
func (i *Image) ArraySize() int               { return i.info.ArraySize }
func (i *Image) Format() hal.Format           { return i.info.Format }
func (i *Image) allocationKey() allocationKey { return allocationKey{kind: ResourceTypeImage, handle: i.handle} }
func (i *Image) allocationName() string       { return i.name }
func (i *Image) allocationType() ResourceType { return ResourceTypeImage }

// View returns the image's default view, covering every mip level and layer. Images without a
// sampled, storage or attachment usage have none.
func (i *Image) View() *ImageView { return i.view }

func (i *Image) defaultViewType() hal.ImageViewType {
	switch i.info.ImageType {
	case hal.ImageType1D:
		if i.info.ArraySize > 1 {
			return hal.ImageViewType1DArray
		}
		return hal.ImageViewType1D
	case hal.ImageType3D:
		return hal.ImageViewType3D
	}

	if i.info.Flags&hal.ImageCreateCubeCompatible != 0 && i.info.ArraySize%6 == 0 {
		if i.info.ArraySize > 6 {
			return hal.ImageViewTypeCubeArray
		}
		return hal.ImageViewTypeCube
	}
	if i.info.ArraySize > 1 {
		return hal.ImageViewType2DArray
	}
	return hal.ImageViewType2D
}

type ImageViewCreateInfo struct {
	Image          *Image
	ViewType       hal.ImageViewType
	Format         hal.Format
	BaseMipLevel   int
	LevelCount     int
	BaseArrayLayer int
	LayerCount     int
}

type ImageView struct {
	resource
	native hal.ImageView
	info   ImageViewCreateInfo
}

func (v *ImageView) Native() hal.ImageView           { return v.native }
func (v *ImageView) CreateInfo() ImageViewCreateInfo { return v.info }
func (v *ImageView) Image() *Image                   { return v.info.Image }
func (v *ImageView) Format() hal.Format              { return v.info.Format }

type ShaderCreateInfo struct {
	Stage hal.ShaderStageFlags
	Code  []uint32
	// EntryPoint defaults to "main".
	EntryPoint string
}

// Shader is a single compiled stage. Native shader objects are created per program, once the
// stages are linked.
type Shader struct {
	resource
	info ShaderCreateInfo
}

func (s *Shader) Stage() hal.ShaderStageFlags { return s.info.Stage }
func (s *Shader) Code() []uint32              { return s.info.Code }
func (s *Shader) EntryPoint() string          { return s.info.EntryPoint }

type PipelineLayoutCreateInfo struct {
	SetLayouts        []*DescriptorSetLayout
	PushConstantRange hal.PushConstantRange
}

type PipelineLayout struct {
	resource
	native hal.PipelineLayout
	info   PipelineLayoutCreateInfo
}

func (l *PipelineLayout) Native() hal.PipelineLayout               { return l.native }
func (l *PipelineLayout) SetLayouts() []*DescriptorSetLayout       { return l.info.SetLayouts }
func (l *PipelineLayout) PushConstantRange() hal.PushConstantRange { return l.info.PushConstantRange }
func (l *PipelineLayout) SetLayoutCount() int                      { return len(l.info.SetLayouts) }

func (l *PipelineLayout) SetLayout(set int) *DescriptorSetLayout {
	if set < 0 || set >= len(l.info.SetLayouts) {
		return nil
	}
	return l.info.SetLayouts[set]
}

// ProgramCreateInfo links shader stages into a program. Valid combinations are vertex and
// fragment, an optional task stage with mesh and fragment, or compute alone. The pipeline
// layout is owned by the caller and must outlive the program.
//
// VertexInput is the vertex fetch of a vertex and fragment program. It is used by draws on
// command buffers that never called SetVertexInput.
type ProgramCreateInfo struct {
	Shaders        []*Shader
	PipelineLayout *PipelineLayout
	VertexInput    VertexInput
}

type ShaderProgram struct {
	resource
	pipelineType PipelineType
	layout       *PipelineLayout
	stages       []hal.ShaderStageFlags
	objects      map[hal.ShaderStageFlags]hal.Shader
	vertexInput  VertexInput
}

func (p *ShaderProgram) PipelineType() PipelineType      { return p.pipelineType }
func (p *ShaderProgram) PipelineLayout() *PipelineLayout { return p.layout }
func (p *ShaderProgram) VertexInput() VertexInput         { return p.vertexInput }

// Stages lists the linked stages in pipeline order.
func (p *ShaderProgram) Stages() []hal.ShaderStageFlags { return p.stages }

// ShaderObject returns the native shader object bound for stage, or zero if the stage is unused.
func (p *ShaderProgram) ShaderObject(stage hal.ShaderStageFlags) hal.Shader {
	return p.objects[stage]
}

func (p *ShaderProgram) SetLayout(set int) *DescriptorSetLayout {
	return p.layout.SetLayout(set)
}

// declaredSets has a bit set for every descriptor set index the program's layout declares.
func (p *ShaderProgram) declaredSets() uint32 {
	var mask uint32
	for set, layout := range p.layout.SetLayouts() {
		if layout != nil && set < MaxDescriptorSets {
			mask |= 1 << set
		}
	}
	return mask
}

func (p *ShaderProgram) PushConstantRange() hal.PushConstantRange {
	return p.layout.PushConstantRange()
}

type QueryPoolCreateInfo struct {
	Type               hal.QueryType
	QueryCount         int
	PipelineStatistics hal.QueryPipelineStatisticFlags
}

type QueryPool struct {
	resource
	native hal.QueryPool
	info   QueryPoolCreateInfo
}

func (p *QueryPool) Native() hal.QueryPool           { return p.native }
func (p *QueryPool) Type() hal.QueryType             { return p.info.Type }
func (p *QueryPool) QueryCount() int                 { return p.info.QueryCount }
func (p *QueryPool) CreateInfo() QueryPoolCreateInfo { return p.info }
