package vulkan

import (
	"image/color"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/forge/hal"
)

func (d *Device) commandBuffer(commandBuffer hal.CommandBuffer) core1_0.CommandBuffer {
	native, _ := d.commandBuffers.get(uint64(commandBuffer))
	return native
}

func (d *Device) CmdSetRenderState(commandBuffer hal.CommandBuffer, state hal.RenderState) error {
	if d.extensions.DynamicState == nil {
		return featureNotPresent("extended dynamic state")
	}
	return d.extensions.DynamicState.CmdSetRenderState(d.commandBuffer(commandBuffer), state)
}

func (d *Device) CmdSetVertexInput(commandBuffer hal.CommandBuffer, bindings []hal.VertexInputBinding, attributes []hal.VertexInputAttribute) error {
	if d.extensions.DynamicState == nil {
		return featureNotPresent("extended dynamic state")
	}
	return d.extensions.DynamicState.CmdSetVertexInput(d.commandBuffer(commandBuffer), bindings, attributes)
}

func (d *Device) CmdSetInputAssembly(commandBuffer hal.CommandBuffer, topology hal.PrimitiveTopology, primitiveRestart bool) error {
	if d.extensions.DynamicState == nil {
		return featureNotPresent("extended dynamic state")
	}
	return d.extensions.DynamicState.CmdSetInputAssembly(d.commandBuffer(commandBuffer), topology, primitiveRestart)
}

func (d *Device) CmdSetViewports(commandBuffer hal.CommandBuffer, viewports []hal.Viewport) {
	native := make([]core1_0.Viewport, 0, len(viewports))
	for _, viewport := range viewports {
		native = append(native, core1_0.Viewport{
			X:        viewport.X,
			Y:        viewport.Y,
			Width:    viewport.Width,
			Height:   viewport.Height,
			MinDepth: viewport.MinDepth,
			MaxDepth: viewport.MaxDepth,
		})
	}
	d.driver.CmdSetViewport(d.commandBuffer(commandBuffer), native...)
}

func rect2D(rect hal.Rect2D) core1_0.Rect2D {
	return core1_0.Rect2D{
		Offset: core1_0.Offset2D{X: rect.Offset.X, Y: rect.Offset.Y},
		Extent: core1_0.Extent2D{Width: rect.Extent.Width, Height: rect.Extent.Height},
	}
}

func (d *Device) CmdSetScissors(commandBuffer hal.CommandBuffer, scissors []hal.Rect2D) {
	native := make([]core1_0.Rect2D, 0, len(scissors))
	for _, scissor := range scissors {
		native = append(native, rect2D(scissor))
	}
	d.driver.CmdSetScissor(d.commandBuffer(commandBuffer), native...)
}

func (d *Device) CmdBindVertexBuffers(commandBuffer hal.CommandBuffer, firstBinding int, buffers []hal.Buffer, offsets []int) {
	d.driver.CmdBindVertexBuffers(d.commandBuffer(commandBuffer), firstBinding, d.buffers.lookup(handles(buffers)), offsets)
}

func (d *Device) CmdBindIndexBuffer(commandBuffer hal.CommandBuffer, buffer hal.Buffer, offset int, indexType hal.IndexType) {
	native, _ := d.buffers.get(uint64(buffer))
	d.driver.CmdBindIndexBuffer(d.commandBuffer(commandBuffer), native, offset, core1_0.IndexType(indexType))
}

func (d *Device) CmdBindShaders(commandBuffer hal.CommandBuffer, stages []hal.ShaderStageFlags, shaders []hal.Shader) error {
	if d.extensions.ShaderObjects == nil {
		return featureNotPresent("shader objects")
	}
	// Unbound stages are passed as nil shader objects.
	objects := make([]ShaderObject, len(shaders))
	for i, shader := range shaders {
		if object, ok := d.shaders.get(uint64(shader)); ok {
			objects[i] = object
		}
	}
	return d.extensions.ShaderObjects.CmdBindShaders(d.commandBuffer(commandBuffer), stages, objects)
}

func (d *Device) CmdBindDescriptorSets(commandBuffer hal.CommandBuffer, bindPoint hal.PipelineBindPoint, layout hal.PipelineLayout, firstSet int, sets []hal.DescriptorSet, dynamicOffsets []int) {
	nativeLayout, _ := d.pipelineLayouts.get(uint64(layout))
	d.driver.CmdBindDescriptorSets(d.commandBuffer(commandBuffer), core1_0.PipelineBindPoint(bindPoint), nativeLayout, firstSet, d.descriptorSets.lookup(handles(sets)), dynamicOffsets)
}

func (d *Device) CmdPushConstants(commandBuffer hal.CommandBuffer, layout hal.PipelineLayout, stages hal.ShaderStageFlags, offset int, data []byte) {
	nativeLayout, _ := d.pipelineLayouts.get(uint64(layout))
	d.driver.CmdPushConstants(d.commandBuffer(commandBuffer), nativeLayout, core1_0.ShaderStageFlags(stages), offset, data)
}

func (d *Device) CmdDraw(commandBuffer hal.CommandBuffer, vertexCount int, instanceCount int, firstVertex int, firstInstance int) {
	d.driver.CmdDraw(d.commandBuffer(commandBuffer), vertexCount, instanceCount, uint32(firstVertex), uint32(firstInstance))
}

func (d *Device) CmdDrawIndexed(commandBuffer hal.CommandBuffer, indexCount int, instanceCount int, firstIndex int, vertexOffset int, firstInstance int) {
	d.driver.CmdDrawIndexed(d.commandBuffer(commandBuffer), indexCount, instanceCount, uint32(firstIndex), vertexOffset, uint32(firstInstance))
}

func (d *Device) CmdDrawIndirect(commandBuffer hal.CommandBuffer, buffer hal.Buffer, offset int, drawCount int, stride int) {
	native, _ := d.buffers.get(uint64(buffer))
	d.driver.CmdDrawIndirect(d.commandBuffer(commandBuffer), native, offset, drawCount, stride)
}

func (d *Device) CmdDrawIndexedIndirect(commandBuffer hal.CommandBuffer, buffer hal.Buffer, offset int, drawCount int, stride int) {
	native, _ := d.buffers.get(uint64(buffer))
	d.driver.CmdDrawIndexedIndirect(d.commandBuffer(commandBuffer), native, offset, drawCount, stride)
}

func (d *Device) CmdDrawMeshTasks(commandBuffer hal.CommandBuffer, groupCountX int, groupCountY int, groupCountZ int) error {
	if d.extensions.MeshShading == nil {
		return featureNotPresent("mesh shading")
	}
	return d.extensions.MeshShading.CmdDrawMeshTasks(d.commandBuffer(commandBuffer), groupCountX, groupCountY, groupCountZ)
}

func (d *Device) CmdDispatch(commandBuffer hal.CommandBuffer, groupCountX int, groupCountY int, groupCountZ int) {
	d.driver.CmdDispatch(d.commandBuffer(commandBuffer), groupCountX, groupCountY, groupCountZ)
}

func (d *Device) CmdDispatchIndirect(commandBuffer hal.CommandBuffer, buffer hal.Buffer, offset int) {
	native, _ := d.buffers.get(uint64(buffer))
	d.driver.CmdDispatchIndirect(d.commandBuffer(commandBuffer), native, offset)
}

func (d *Device) CmdPipelineBarrier(commandBuffer hal.CommandBuffer, srcStageMask hal.PipelineStageFlags, dstStageMask hal.PipelineStageFlags, bufferBarriers []hal.BufferMemoryBarrier, imageBarriers []hal.ImageMemoryBarrier) error {
	var nativeBufferBarriers []core1_0.BufferMemoryBarrier
	for _, barrier := range bufferBarriers {
		buffer, _ := d.buffers.get(uint64(barrier.Buffer))
		nativeBufferBarriers = append(nativeBufferBarriers, core1_0.BufferMemoryBarrier{
			SrcAccessMask:       core1_0.AccessFlags(barrier.SrcAccessMask),
			DstAccessMask:       core1_0.AccessFlags(barrier.DstAccessMask),
			SrcQueueFamilyIndex: barrier.SrcQueueFamilyIndex,
			DstQueueFamilyIndex: barrier.DstQueueFamilyIndex,
			Buffer:              buffer,
			Offset:              barrier.Offset,
			Size:                barrier.Size,
		})
	}

	var nativeImageBarriers []core1_0.ImageMemoryBarrier
	for _, barrier := range imageBarriers {
		image, _ := d.images.get(uint64(barrier.Image))
		nativeImageBarriers = append(nativeImageBarriers, core1_0.ImageMemoryBarrier{
			SrcAccessMask:       core1_0.AccessFlags(barrier.SrcAccessMask),
			DstAccessMask:       core1_0.AccessFlags(barrier.DstAccessMask),
			OldLayout:           core1_0.ImageLayout(barrier.OldLayout),
			NewLayout:           core1_0.ImageLayout(barrier.NewLayout),
			SrcQueueFamilyIndex: barrier.SrcQueueFamilyIndex,
			DstQueueFamilyIndex: barrier.DstQueueFamilyIndex,
			Image:               image,
			SubresourceRange:    subresourceRange(barrier.SubresourceRange),
		})
	}

	return d.driver.CmdPipelineBarrier(d.commandBuffer(commandBuffer),
		core1_0.PipelineStageFlags(srcStageMask), core1_0.PipelineStageFlags(dstStageMask),
		0, nil, nativeBufferBarriers, nativeImageBarriers)
}

func (d *Device) CmdCopyBuffer(commandBuffer hal.CommandBuffer, src hal.Buffer, dst hal.Buffer, regions ...hal.BufferCopy) error {
	nativeSrc, _ := d.buffers.get(uint64(src))
	nativeDst, _ := d.buffers.get(uint64(dst))

	nativeRegions := make([]core1_0.BufferCopy, 0, len(regions))
	for _, region := range regions {
		nativeRegions = append(nativeRegions, core1_0.BufferCopy{
			SrcOffset: region.SrcOffset,
			DstOffset: region.DstOffset,
			Size:      region.Size,
		})
	}
	return d.driver.CmdCopyBuffer(d.commandBuffer(commandBuffer), nativeSrc, nativeDst, nativeRegions...)
}

func offset3D(offset hal.Offset3D) core1_0.Offset3D {
	return core1_0.Offset3D{X: offset.X, Y: offset.Y, Z: offset.Z}
}

func extent3D(extent hal.Extent3D) core1_0.Extent3D {
	return core1_0.Extent3D{Width: extent.Width, Height: extent.Height, Depth: extent.Depth}
}

func (d *Device) CmdCopyBufferToImage(commandBuffer hal.CommandBuffer, src hal.Buffer, dst hal.Image, dstLayout hal.ImageLayout, regions ...hal.BufferImageCopy) error {
	nativeSrc, _ := d.buffers.get(uint64(src))
	nativeDst, _ := d.images.get(uint64(dst))

	nativeRegions := make([]core1_0.BufferImageCopy, 0, len(regions))
	for _, region := range regions {
		nativeRegions = append(nativeRegions, core1_0.BufferImageCopy{
			BufferOffset:      region.BufferOffset,
			BufferRowLength:   region.BufferRowLength,
			BufferImageHeight: region.BufferImageHeight,
			ImageSubresource:  subresourceLayers(region.ImageSubresource),
			ImageOffset:       offset3D(region.ImageOffset),
			ImageExtent:       extent3D(region.ImageExtent),
		})
	}
	return d.driver.CmdCopyBufferToImage(d.commandBuffer(commandBuffer), nativeSrc, nativeDst, core1_0.ImageLayout(dstLayout), nativeRegions...)
}

func (d *Device) CmdCopyImage(commandBuffer hal.CommandBuffer, src hal.Image, srcLayout hal.ImageLayout, dst hal.Image, dstLayout hal.ImageLayout, regions ...hal.ImageCopy) error {
	nativeSrc, _ := d.images.get(uint64(src))
	nativeDst, _ := d.images.get(uint64(dst))

	nativeRegions := make([]core1_0.ImageCopy, 0, len(regions))
	for _, region := range regions {
		nativeRegions = append(nativeRegions, core1_0.ImageCopy{
			SrcSubresource: subresourceLayers(region.SrcSubresource),
			SrcOffset:      offset3D(region.SrcOffset),
			DstSubresource: subresourceLayers(region.DstSubresource),
			DstOffset:      offset3D(region.DstOffset),
			Extent:         extent3D(region.Extent),
		})
	}
	return d.driver.CmdCopyImage(d.commandBuffer(commandBuffer), nativeSrc, core1_0.ImageLayout(srcLayout), nativeDst, core1_0.ImageLayout(dstLayout), nativeRegions...)
}

func (d *Device) CmdBlitImage(commandBuffer hal.CommandBuffer, src hal.Image, srcLayout hal.ImageLayout, dst hal.Image, dstLayout hal.ImageLayout, filter hal.Filter, regions ...hal.ImageBlit) error {
	nativeSrc, _ := d.images.get(uint64(src))
	nativeDst, _ := d.images.get(uint64(dst))

	nativeRegions := make([]core1_0.ImageBlit, 0, len(regions))
	for _, region := range regions {
		nativeRegions = append(nativeRegions, core1_0.ImageBlit{
			SrcSubresource: subresourceLayers(region.SrcSubresource),
			SrcOffsets:     [2]core1_0.Offset3D{offset3D(region.SrcOffsets[0]), offset3D(region.SrcOffsets[1])},
			DstSubresource: subresourceLayers(region.DstSubresource),
			DstOffsets:     [2]core1_0.Offset3D{offset3D(region.DstOffsets[0]), offset3D(region.DstOffsets[1])},
		})
	}
	return d.driver.CmdBlitImage(d.commandBuffer(commandBuffer), nativeSrc, core1_0.ImageLayout(srcLayout), nativeDst, core1_0.ImageLayout(dstLayout), nativeRegions, core1_0.Filter(filter))
}

func (d *Device) CmdUpdateBuffer(commandBuffer hal.CommandBuffer, buffer hal.Buffer, offset int, data []byte) {
	native, _ := d.buffers.get(uint64(buffer))
	d.driver.CmdUpdateBuffer(d.commandBuffer(commandBuffer), native, offset, len(data), data)
}

func (d *Device) CmdResetQueryPool(commandBuffer hal.CommandBuffer, pool hal.QueryPool, firstQuery int, queryCount int) {
	native, _ := d.queryPools.get(uint64(pool))
	d.driver.CmdResetQueryPool(d.commandBuffer(commandBuffer), native, firstQuery, queryCount)
}

func (d *Device) CmdWriteTimestamp(commandBuffer hal.CommandBuffer, stage hal.PipelineStageFlags, pool hal.QueryPool, query int) {
	native, _ := d.queryPools.get(uint64(pool))
	d.driver.CmdWriteTimestamp(d.commandBuffer(commandBuffer), core1_0.PipelineStageFlags(stage), native, query)
}

func (d *Device) CmdBeginQuery(commandBuffer hal.CommandBuffer, pool hal.QueryPool, query int, precise bool) {
	native, _ := d.queryPools.get(uint64(pool))
	var flags core1_0.QueryControlFlags
	if precise {
		flags = core1_0.QueryControlPrecise
	}
	d.driver.CmdBeginQuery(d.commandBuffer(commandBuffer), native, query, flags)
}

func (d *Device) CmdEndQuery(commandBuffer hal.CommandBuffer, pool hal.QueryPool, query int) {
	native, _ := d.queryPools.get(uint64(pool))
	d.driver.CmdEndQuery(d.commandBuffer(commandBuffer), native, query)
}

func (d *Device) renderingAttachment(info *hal.RenderingAttachmentInfo) *RenderingAttachment {
	if info == nil {
		return nil
	}
	view, _ := d.imageViews.get(uint64(info.ImageView))
	return &RenderingAttachment{
		ImageView:   view,
		ImageLayout: info.ImageLayout,
		LoadOp:      info.LoadOp,
		StoreOp:     info.StoreOp,
		ClearValue:  info.ClearValue,
	}
}

func (d *Device) CmdBeginRendering(commandBuffer hal.CommandBuffer, info hal.RenderingInfo) error {
	if d.extensions.DynamicRendering == nil {
		return featureNotPresent("dynamic rendering")
	}

	native := RenderingInfo{
		RenderArea:        info.RenderArea,
		LayerCount:        info.LayerCount,
		DepthAttachment:   d.renderingAttachment(info.DepthAttachment),
		StencilAttachment: d.renderingAttachment(info.StencilAttachment),
	}
	for i := range info.ColorAttachments {
		native.ColorAttachments = append(native.ColorAttachments, *d.renderingAttachment(&info.ColorAttachments[i]))
	}
	return d.extensions.DynamicRendering.CmdBeginRendering(d.commandBuffer(commandBuffer), native)
}

func (d *Device) CmdEndRendering(commandBuffer hal.CommandBuffer) error {
	if d.extensions.DynamicRendering == nil {
		return featureNotPresent("dynamic rendering")
	}
	return d.extensions.DynamicRendering.CmdEndRendering(d.commandBuffer(commandBuffer))
}

func (d *Device) CmdBeginDebugLabel(commandBuffer hal.CommandBuffer, label hal.DebugLabel) {
	if d.extensions.DebugUtils == nil {
		return
	}
	d.extensions.DebugUtils.CmdBeginDebugUtilsLabel(d.commandBuffer(commandBuffer), ext_debug_utils.DebugUtilsLabel{
		LabelName: label.Name,
		Color:     labelColor(label.Color),
	})
}

func (d *Device) CmdEndDebugLabel(commandBuffer hal.CommandBuffer) {
	if d.extensions.DebugUtils == nil {
		return
	}
	d.extensions.DebugUtils.CmdEndDebugUtilsLabel(d.commandBuffer(commandBuffer))
}

func (d *Device) CmdInsertDebugLabel(commandBuffer hal.CommandBuffer, label hal.DebugLabel) {
	if d.extensions.DebugUtils == nil {
		return
	}
	d.extensions.DebugUtils.CmdInsertDebugUtilsLabel(d.commandBuffer(commandBuffer), ext_debug_utils.DebugUtilsLabel{
		LabelName: label.Name,
		Color:     labelColor(label.Color),
	})
}

func labelColor(rgba [4]float32) color.Color {
	channel := func(value float32) uint16 {
		return uint16(min(max(value, 0), 1) * 0xffff)
	}
	return color.NRGBA64{R: channel(rgba[0]), G: channel(rgba[1]), B: channel(rgba[2]), A: channel(rgba[3])}
}
