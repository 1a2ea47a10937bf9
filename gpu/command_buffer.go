package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/internal/utils"
	"github.com/vkngwrapper/forge/result"
)

var graphicsShaderStages = []hal.ShaderStageFlags{
	hal.ShaderStageVertex,
	hal.ShaderStageFragment,
	hal.ShaderStageTessellationControl,
	hal.ShaderStageTessellationEvaluation,
	hal.ShaderStageGeometry,
	hal.ShaderStageTask,
	hal.ShaderStageMesh,
}

// CommandBuffer records work for one queue. State setters only update the recorded state; the
// native state is brought up to date when a draw or dispatch is recorded, and only for the parts
// that changed.
//
// A CommandBuffer must be recorded from one goroutine at a time.
type CommandBuffer struct {
	logger *slog.Logger
	device *Device
	driver hal.Device
	native hal.CommandBuffer
	pool   *ThreadCommandPool
	queue  *Queue
	usage  CommandBufferUsage

	state       CommandBufferState
	command     commandState
	retiredSets []*DescriptorSet
	breadcrumbs *BreadcrumbTracker
}

func newCommandBuffer(device *Device, pool *ThreadCommandPool, native hal.CommandBuffer) *CommandBuffer {
	return &CommandBuffer{
		logger:      device.logger,
		device:      device,
		driver:      device.driver,
		native:      native,
		pool:        pool,
		queue:       pool.queue,
		command:     newCommandState(),
		breadcrumbs: NewBreadcrumbTracker(device.options.EnableBreadcrumbs),
	}
}

func (c *CommandBuffer) Native() hal.CommandBuffer       { return c.native }
func (c *CommandBuffer) State() CommandBufferState       { return c.state }
func (c *CommandBuffer) Queue() *Queue                   { return c.queue }
func (c *CommandBuffer) QueueType() QueueType            { return c.queue.queueType }
func (c *CommandBuffer) Usage() CommandBufferUsage       { return c.usage }
func (c *CommandBuffer) Breadcrumbs() *BreadcrumbTracker { return c.breadcrumbs }

func (c *CommandBuffer) record(format string, args ...any) {
	if c.breadcrumbs.Enabled() {
		c.breadcrumbs.Record(fmt.Sprintf(format, args...))
	}
}

func (c *CommandBuffer) assertRecording(operation string) error {
	return c.device.assertf(c.state == CommandBufferStateRecording, "%s recorded while the command buffer is %s", operation, c.state)
}

// Begin starts recording. The command buffer must be in the Initial state, so an executable
// buffer has to be Reset before it is recorded again. One-time buffers are begun for a single
// submission.
func (c *CommandBuffer) Begin() error {
	c.logger.Debug("CommandBuffer::Begin")

	if c.state != CommandBufferStateInitial {
		return result.Newf(result.RuntimeError, "command buffer cannot begin while %s", c.state)
	}

	var flags hal.CommandBufferUsageFlags
	if c.usage == CommandBufferUsageOneTime {
		flags |= hal.CommandBufferUsageOneTimeSubmit
	}

	err := c.driver.BeginCommandBuffer(c.native, flags)
	if err != nil {
		return errors.Wrap(err, "failed to begin command buffer")
	}

	c.command = newCommandState()
	c.state = CommandBufferStateRecording
	return nil
}

func (c *CommandBuffer) End() error {
	c.logger.Debug("CommandBuffer::End")

	if c.state != CommandBufferStateRecording {
		return result.Newf(result.RuntimeError, "command buffer cannot end while %s", c.state)
	}

	err := c.driver.EndCommandBuffer(c.native)
	if err != nil {
		return errors.Wrap(err, "failed to end command buffer")
	}

	c.state = CommandBufferStateExecutable
	return nil
}

// Reset returns the command buffer to the Initial state from any state, releasing the
// descriptor sets it allocated and its breadcrumbs.
func (c *CommandBuffer) Reset() error {
	c.logger.Debug("CommandBuffer::Reset")

	err := c.driver.ResetCommandBuffer(c.native, true)
	c.resetState()
	if err != nil {
		return errors.Wrap(err, "failed to reset command buffer")
	}
	return nil
}

// resetState drops everything recorded since Begin. The native command buffer must already be
// reset.
func (c *CommandBuffer) resetState() {
	c.releaseDescriptorSets()
	c.command = newCommandState()
	c.state = CommandBufferStateInitial
	c.breadcrumbs.Reset()
}

func (c *CommandBuffer) releaseDescriptorSets() {
	sets := c.retiredSets
	for _, set := range c.command.bindings.sets {
		if set != nil {
			sets = append(sets, set)
		}
	}

	for _, set := range sets {
		err := set.layout.FreeSet(set)
		if err != nil {
			c.logger.Warn("CommandBuffer::Reset", slog.String("message", "failed to free descriptor set"), slog.Any("error", err))
		}
	}
	c.retiredSets = nil
}

// SetProgram selects the program used by the following draws or dispatches. Descriptor sets
// allocated for a different set layout are retired and their bindings rewritten on the next
// flush.
func (c *CommandBuffer) SetProgram(program *ShaderProgram) error {
	err := c.assertRecording("SetProgram")
	if err != nil {
		return err
	}
	err = c.device.assertf(program != nil && program.IsValid(), "SetProgram requires a live program")
	if err != nil {
		return err
	}

	if c.command.program == program {
		return nil
	}

	bindings := &c.command.bindings
	for set := 0; set < MaxDescriptorSets; set++ {
		current := bindings.sets[set]
		if current != nil && current.layout != program.SetLayout(set) {
			c.retiredSets = append(c.retiredSets, current)
			bindings.sets[set] = nil
			bindings.dirtyBindings[set] |= bindings.setBindings[set]
		}
	}

	c.command.program = program
	if program.pipelineType == PipelineTypeGeometry {
		c.command.dirty |= dirtyVertexInput | dirtyVertexState | dirtyIndexState
		c.command.graphics.vertexDirty = utils.MaskRange(0, MaxVertexBuffers)
		for binding, buffer := range c.command.graphics.vertexBuffers {
			if buffer == nil {
				c.command.graphics.vertexDirty &^= 1 << binding
			}
		}
		if c.command.graphics.indexBuffer == nil {
			c.command.dirty &^= dirtyIndexState
		}
	}
	c.command.dirty |= dirtyPushConstant
	return nil
}

func (c *CommandBuffer) Program() *ShaderProgram { return c.command.program }

// SetResource stages the content of one binding of a classic descriptor set. Content equal to
// what the binding already holds is ignored, so the set is not rewritten.
func (c *CommandBuffer) SetResource(set int, info DescriptorUpdateInfo) error {
	err := c.assertRecording("SetResource")
	if err != nil {
		return err
	}
	err = c.device.assertf(set >= 0 && set < MaxDescriptorSets, "descriptor set %d is out of range", set)
	if err != nil {
		return err
	}
	err = c.device.assertf(info.Binding >= 0 && info.Binding < MaxBindings, "binding %d is out of range", info.Binding)
	if err != nil {
		return err
	}

	bindings := &c.command.bindings
	bit := uint32(1) << info.Binding
	if bindings.setBindings[set]&bit != 0 && bindings.bindings[set][info.Binding].Equal(info) {
		return nil
	}

	bindings.bindings[set][info.Binding] = info
	bindings.setMask |= 1 << set
	bindings.setBindings[set] |= bit
	bindings.dirtyBindings[set] |= bit
	return nil
}

func (c *CommandBuffer) SetImages(set, binding int, images ...*Image) error {
	return c.SetResource(set, DescriptorUpdateInfo{
		Binding: binding,
		Images:  append([]*Image(nil), images...),
	})
}

func (c *CommandBuffer) SetBuffers(set, binding int, buffers ...*Buffer) error {
	return c.SetResource(set, DescriptorUpdateInfo{
		Binding: binding,
		Buffers: append([]*Buffer(nil), buffers...),
	})
}

func (c *CommandBuffer) SetSamplers(set, binding int, samplers ...*Sampler) error {
	return c.SetResource(set, DescriptorUpdateInfo{
		Binding:  binding,
		Samplers: append([]*Sampler(nil), samplers...),
	})
}

// SetVertexInput overrides the vertex input of the bound program until the command buffer is
// reset. An empty input is valid and draws without vertex attributes.
func (c *CommandBuffer) SetVertexInput(input VertexInput) error {
	err := c.assertRecording("SetVertexInput")
	if err != nil {
		return err
	}

	c.command.graphics.vertexInput = input.clone()
	c.command.graphics.hasVertexInput = true
	c.command.dirty |= dirtyVertexInput
	return nil
}

func (c *CommandBuffer) SetPrimitiveTopology(topology hal.PrimitiveTopology) error {
	err := c.assertRecording("SetPrimitiveTopology")
	if err != nil {
		return err
	}

	c.command.graphics.topology = topology
	c.command.dirty |= dirtyVertexInput
	return nil
}

func (c *CommandBuffer) SetDepthState(state DepthState) error {
	err := c.assertRecording("SetDepthState")
	if err != nil {
		return err
	}

	c.command.graphics.depth = state
	return nil
}

func (c *CommandBuffer) SetCullMode(mode hal.CullModeFlags) error {
	err := c.assertRecording("SetCullMode")
	if err != nil {
		return err
	}

	c.command.graphics.cullMode = mode
	return nil
}

func (c *CommandBuffer) SetFrontFaceWinding(face hal.FrontFace) error {
	err := c.assertRecording("SetFrontFaceWinding")
	if err != nil {
		return err
	}

	c.command.graphics.frontFace = face
	return nil
}

func (c *CommandBuffer) SetPolygonMode(mode hal.PolygonMode) error {
	err := c.assertRecording("SetPolygonMode")
	if err != nil {
		return err
	}

	c.command.graphics.polygonMode = mode
	return nil
}

// BindVertexBuffers stages buffers for consecutive bindings starting at firstBinding. A nil
// offsets slice binds every buffer from its start.
func (c *CommandBuffer) BindVertexBuffers(firstBinding int, buffers []*Buffer, offsets []int) error {
	err := c.assertRecording("BindVertexBuffers")
	if err != nil {
		return err
	}
	err = c.device.assertf(firstBinding >= 0 && firstBinding+len(buffers) <= MaxVertexBuffers, "vertex bindings %d..%d are out of range", firstBinding, firstBinding+len(buffers))
	if err != nil {
		return err
	}
	err = c.device.assertf(offsets == nil || len(offsets) == len(buffers), "%d offsets were provided for %d vertex buffers", len(offsets), len(buffers))
	if err != nil {
		return err
	}

	graphics := &c.command.graphics
	for i, buffer := range buffers {
		err = c.device.assertf(buffer != nil, "vertex buffer %d is nil", firstBinding+i)
		if err != nil {
			return err
		}

		var offset int
		if offsets != nil {
			offset = offsets[i]
		}

		binding := firstBinding + i
		graphics.vertexBuffers[binding] = buffer
		graphics.vertexOffsets[binding] = offset
		graphics.vertexDirty |= 1 << binding
	}

	c.command.dirty |= dirtyVertexState
	return nil
}

func (c *CommandBuffer) BindIndexBuffer(buffer *Buffer, offset int, indexType hal.IndexType) error {
	err := c.assertRecording("BindIndexBuffer")
	if err != nil {
		return err
	}
	err = c.device.assertf(buffer != nil, "index buffer is nil")
	if err != nil {
		return err
	}

	c.command.graphics.indexBuffer = buffer
	c.command.graphics.indexOffset = offset
	c.command.graphics.indexType = indexType
	c.command.dirty |= dirtyIndexState
	return nil
}

// PushConstant copies data into the push constant block at offset. The block is uploaded with
// the next draw or dispatch, through the program's push constant range.
func (c *CommandBuffer) PushConstant(data []byte, offset int) error {
	err := c.assertRecording("PushConstant")
	if err != nil {
		return err
	}
	err = c.device.assertf(offset >= 0 && offset+len(data) <= PushConstantSize, "push constant range %d+%d exceeds %d bytes", offset, len(data), PushConstantSize)
	if err != nil {
		return err
	}

	copy(c.command.bindings.pushConstants[offset:], data)
	c.command.dirty |= dirtyPushConstant
	return nil
}

func (c *CommandBuffer) Draw(vertexCount, instanceCount, firstVertex, firstInstance int) error {
	err := c.assertRecording("Draw")
	if err != nil {
		return err
	}
	err = c.device.assertf(vertexCount > 0, "Draw requires a vertex count")
	if err != nil {
		return err
	}

	c.record("Draw(%d, %d)", vertexCount, instanceCount)
	err = c.flushGraphicsCommand()
	if err != nil {
		return err
	}

	c.driver.CmdDraw(c.native, vertexCount, instanceCount, firstVertex, firstInstance)
	return nil
}

func (c *CommandBuffer) DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int) error {
	err := c.assertRecording("DrawIndexed")
	if err != nil {
		return err
	}
	err = c.device.assertf(indexCount > 0, "DrawIndexed requires an index count")
	if err != nil {
		return err
	}
	err = c.device.assertf(c.command.graphics.indexBuffer != nil, "DrawIndexed requires a bound index buffer")
	if err != nil {
		return err
	}

	c.record("DrawIndexed(%d, %d)", indexCount, instanceCount)
	err = c.flushGraphicsCommand()
	if err != nil {
		return err
	}

	c.driver.CmdDrawIndexed(c.native, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
	return nil
}

func (c *CommandBuffer) DrawIndirect(buffer *Buffer, offset, drawCount, stride int) error {
	err := c.assertRecording("DrawIndirect")
	if err != nil {
		return err
	}
	err = c.device.assertf(buffer != nil, "DrawIndirect requires an argument buffer")
	if err != nil {
		return err
	}

	c.record("DrawIndirect(%d)", drawCount)
	err = c.flushGraphicsCommand()
	if err != nil {
		return err
	}

	c.driver.CmdDrawIndirect(c.native, buffer.native, offset, drawCount, stride)
	return nil
}

func (c *CommandBuffer) DrawIndexedIndirect(buffer *Buffer, offset, drawCount, stride int) error {
	err := c.assertRecording("DrawIndexedIndirect")
	if err != nil {
		return err
	}
	err = c.device.assertf(buffer != nil, "DrawIndexedIndirect requires an argument buffer")
	if err != nil {
		return err
	}
	err = c.device.assertf(c.command.graphics.indexBuffer != nil, "DrawIndexedIndirect requires a bound index buffer")
	if err != nil {
		return err
	}

	c.record("DrawIndexedIndirect(%d)", drawCount)
	err = c.flushGraphicsCommand()
	if err != nil {
		return err
	}

	c.driver.CmdDrawIndexedIndirect(c.native, buffer.native, offset, drawCount, stride)
	return nil
}

func (c *CommandBuffer) DrawMeshTasks(groupCountX, groupCountY, groupCountZ int) error {
	err := c.assertRecording("DrawMeshTasks")
	if err != nil {
		return err
	}
	err = c.device.assertf(c.command.program != nil && c.command.program.pipelineType == PipelineTypeMesh, "DrawMeshTasks requires a mesh program")
	if err != nil {
		return err
	}

	c.record("DrawMeshTasks(%d, %d, %d)", groupCountX, groupCountY, groupCountZ)
	err = c.flushGraphicsCommand()
	if err != nil {
		return err
	}

	return c.driver.CmdDrawMeshTasks(c.native, groupCountX, groupCountY, groupCountZ)
}

func (c *CommandBuffer) Dispatch(groupCountX, groupCountY, groupCountZ int) error {
	err := c.assertRecording("Dispatch")
	if err != nil {
		return err
	}
	err = c.device.assertf(groupCountX > 0 && groupCountY > 0 && groupCountZ > 0, "Dispatch requires positive group counts")
	if err != nil {
		return err
	}

	c.record("Dispatch(%d, %d, %d)", groupCountX, groupCountY, groupCountZ)
	err = c.flushComputeCommand()
	if err != nil {
		return err
	}

	c.driver.CmdDispatch(c.native, groupCountX, groupCountY, groupCountZ)
	return nil
}

func (c *CommandBuffer) DispatchIndirect(buffer *Buffer, offset int) error {
	err := c.assertRecording("DispatchIndirect")
	if err != nil {
		return err
	}
	err = c.device.assertf(buffer != nil, "DispatchIndirect requires an argument buffer")
	if err != nil {
		return err
	}

	c.record("DispatchIndirect")
	err = c.flushComputeCommand()
	if err != nil {
		return err
	}

	c.driver.CmdDispatchIndirect(c.native, buffer.native, offset)
	return nil
}

func (c *CommandBuffer) flushGraphicsCommand() error {
	program := c.command.program
	err := c.device.assertf(program != nil && (program.pipelineType == PipelineTypeGeometry || program.pipelineType == PipelineTypeMesh),
		"draws require a geometry or mesh program")
	if err != nil {
		return err
	}

	if program.pipelineType == PipelineTypeGeometry {
		err = c.device.assertf(c.command.graphics.hasVertexInput || !program.vertexInput.empty(),
			"draw with program %q has no vertex input, set one on the program or call SetVertexInput", program.name)
		if err != nil {
			return err
		}
	}

	err = c.driver.CmdSetRenderState(c.native, c.command.graphics.renderState())
	if err != nil {
		return err
	}

	if program.pipelineType == PipelineTypeGeometry {
		err = c.flushVertexState()
		if err != nil {
			return err
		}
	}

	err = c.bindGraphicsShaders(program)
	if err != nil {
		return err
	}

	err = c.flushDescriptorSets(hal.PipelineBindPointGraphics)
	if err != nil {
		return err
	}

	c.command.dirty = 0
	return nil
}

func (c *CommandBuffer) flushComputeCommand() error {
	program := c.command.program
	err := c.device.assertf(program != nil && program.pipelineType == PipelineTypeCompute, "dispatches require a compute program")
	if err != nil {
		return err
	}

	err = c.driver.CmdBindShaders(c.native,
		[]hal.ShaderStageFlags{hal.ShaderStageCompute},
		[]hal.Shader{program.ShaderObject(hal.ShaderStageCompute)})
	if err != nil {
		return err
	}

	err = c.flushDescriptorSets(hal.PipelineBindPointCompute)
	if err != nil {
		return err
	}

	c.command.dirty = 0
	return nil
}

func (c *CommandBuffer) flushVertexState() error {
	graphics := &c.command.graphics

	if c.command.dirty&dirtyVertexInput != 0 {
		bindings, attributes, err := c.vertexInputDescription()
		if err != nil {
			return err
		}

		err = c.driver.CmdSetVertexInput(c.native, bindings, attributes)
		if err != nil {
			return err
		}
		err = c.driver.CmdSetInputAssembly(c.native, graphics.topology, false)
		if err != nil {
			return err
		}
	}

	if c.command.dirty&dirtyVertexState != 0 {
		utils.ForEachRange(graphics.vertexDirty, func(first, count int) {
			buffers := make([]hal.Buffer, count)
			offsets := make([]int, count)
			for i := 0; i < count; i++ {
				buffers[i] = graphics.vertexBuffers[first+i].native
				offsets[i] = graphics.vertexOffsets[first+i]
			}
			c.driver.CmdBindVertexBuffers(c.native, first, buffers, offsets)
		})
		graphics.vertexDirty = 0
	}

	if c.command.dirty&dirtyIndexState != 0 && graphics.indexBuffer != nil {
		c.driver.CmdBindIndexBuffer(c.native, graphics.indexBuffer.native, graphics.indexOffset, graphics.indexType)
	}

	return nil
}

// vertexInputDescription declares each binding once, at its first use by an attribute. The
// program's input applies unless SetVertexInput was called.
func (c *CommandBuffer) vertexInputDescription() ([]hal.VertexInputBinding, []hal.VertexInputAttribute, error) {
	input := c.command.graphics.vertexInput
	if !c.command.graphics.hasVertexInput {
		input = c.command.program.vertexInput
	}
	bindings := make([]hal.VertexInputBinding, 0, len(input.Bindings))
	attributes := make([]hal.VertexInputAttribute, 0, len(input.Attributes))

	var declared uint32
	for _, attribute := range input.Attributes {
		err := c.device.assertf(attribute.Binding >= 0 && attribute.Binding < len(input.Bindings) && attribute.Binding < 32,
			"vertex attribute %d uses undeclared binding %d", attribute.Location, attribute.Binding)
		if err != nil {
			return nil, nil, err
		}

		attributes = append(attributes, hal.VertexInputAttribute{
			Location: attribute.Location,
			Binding:  attribute.Binding,
			Format:   attribute.Format,
			Offset:   attribute.Offset,
		})

		bit := uint32(1) << attribute.Binding
		if declared&bit != 0 {
			continue
		}
		declared |= bit
		bindings = append(bindings, hal.VertexInputBinding{
			Binding:   attribute.Binding,
			Stride:    input.Bindings[attribute.Binding].Stride,
			InputRate: hal.VertexInputRateVertex,
			Divisor:   1,
		})
	}

	return bindings, attributes, nil
}

// bindGraphicsShaders binds every graphics stage the device supports, clearing the stages the
// program does not use.
func (c *CommandBuffer) bindGraphicsShaders(program *ShaderProgram) error {
	features := c.device.features.Enabled

	stages := make([]hal.ShaderStageFlags, 0, len(graphicsShaderStages))
	shaders := make([]hal.Shader, 0, len(graphicsShaderStages))
	for _, stage := range graphicsShaderStages {
		switch stage {
		case hal.ShaderStageTessellationControl, hal.ShaderStageTessellationEvaluation:
			if !features.TessellationShader {
				continue
			}
		case hal.ShaderStageGeometry:
			if !features.GeometryShader {
				continue
			}
		case hal.ShaderStageTask, hal.ShaderStageMesh:
			if !features.MeshShader {
				continue
			}
		}

		stages = append(stages, stage)
		shaders = append(shaders, program.ShaderObject(stage))
	}

	return c.driver.CmdBindShaders(c.native, stages, shaders)
}

func (c *CommandBuffer) flushDescriptorSets(bindPoint hal.PipelineBindPoint) error {
	program := c.command.program

	var err error
	if layout := program.SetLayout(0); layout != nil && layout.IsBindless() {
		err = c.flushBindless(bindPoint)
	} else {
		err = c.flushClassicSets(bindPoint)
	}
	if err != nil {
		return err
	}

	if c.command.dirty&dirtyPushConstant != 0 {
		pushRange := program.PushConstantRange()
		if pushRange.Size > 0 {
			data := c.command.bindings.pushConstants[pushRange.Offset : pushRange.Offset+pushRange.Size]
			c.driver.CmdPushConstants(c.native, program.layout.native, pushRange.StageFlags, pushRange.Offset, data)
		}
	}

	return nil
}

// flushBindless materializes pending bindless updates and binds the bindless sets. The resource
// set is bound once per bind point; the handle set again whenever its buffer was rebuilt.
func (c *CommandBuffer) flushBindless(bindPoint hal.PipelineBindPoint) error {
	bindless := c.device.bindless
	err := c.device.assertf(bindless != nil, "program uses bindless set layouts, but bindless resources are disabled")
	if err != nil {
		return err
	}

	err = bindless.build()
	if err != nil {
		return err
	}

	layout := bindless.PipelineLayout()
	if !c.command.bindlessBound[bindPoint] {
		c.driver.CmdBindDescriptorSets(c.native, bindPoint, layout.native, BindlessResourceSetIndex,
			[]hal.DescriptorSet{bindless.ResourceSet().native},
			make([]int, bindless.ResourceLayout().DynamicDescriptorCount()))
	}

	generation := bindless.handleGeneration()
	if !c.command.bindlessBound[bindPoint] || c.command.bindlessGeneration[bindPoint] != generation {
		c.driver.CmdBindDescriptorSets(c.native, bindPoint, layout.native, BindlessHandleSetIndex,
			[]hal.DescriptorSet{bindless.HandleSet().native},
			make([]int, bindless.HandleLayout().DynamicDescriptorCount()))
	}

	c.command.bindlessBound[bindPoint] = true
	c.command.bindlessGeneration[bindPoint] = generation
	return nil
}

// flushClassicSets flushes the staged sets the program declares. Sets staged for a set index the
// program leaves out stay staged for a later program.
func (c *CommandBuffer) flushClassicSets(bindPoint hal.PipelineBindPoint) error {
	var err error
	utils.ForEachBit(c.command.bindings.setMask&c.command.program.declaredSets(), func(set int) {
		if err == nil {
			err = c.flushSet(bindPoint, set)
		}
	})
	return err
}

// flushSet writes the dirty bindings of set and binds it. A binding that is not dirty is never
// written again.
func (c *CommandBuffer) flushSet(bindPoint hal.PipelineBindPoint, set int) error {
	bindings := &c.command.bindings
	program := c.command.program

	layout := program.SetLayout(set)
	err := c.device.assertf(layout != nil, "resources were set for set %d, which the program does not declare", set)
	if err != nil {
		return err
	}

	if bindings.sets[set] == nil {
		allocated, err := layout.AllocateSet()
		if err != nil {
			return err
		}
		bindings.sets[set] = allocated
		bindings.dirtyBindings[set] |= bindings.setBindings[set]
	}
	descriptorSet := bindings.sets[set]

	utils.ForEachBit(bindings.dirtyBindings[set], func(binding int) {
		if err == nil {
			err = descriptorSet.Update(bindings.bindings[set][binding])
		}
	})
	if err != nil {
		return err
	}
	bindings.dirtyBindings[set] = 0

	c.driver.CmdBindDescriptorSets(c.native, bindPoint, program.layout.native, set,
		[]hal.DescriptorSet{descriptorSet.native},
		make([]int, layout.DynamicDescriptorCount()))
	return nil
}
