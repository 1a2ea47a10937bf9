package gpu

import (
	"github.com/vkngwrapper/forge/hal"
)

// CopyBuffer copies size bytes from the start of src to dstOffset in dst. A size of zero or less
// copies the whole source buffer.
func (c *CommandBuffer) CopyBuffer(src, dst *Buffer, dstOffset, size int) error {
	err := c.assertRecording("CopyBuffer")
	if err != nil {
		return err
	}
	err = c.device.assertf(src != nil && dst != nil, "CopyBuffer requires a source and a destination")
	if err != nil {
		return err
	}

	if size <= 0 {
		size = src.Size()
	}
	err = c.device.assertf(size <= src.Size() && dstOffset >= 0 && dstOffset+size <= dst.Size(),
		"copy of %d bytes to offset %d does not fit buffers of %d and %d bytes", size, dstOffset, src.Size(), dst.Size())
	if err != nil {
		return err
	}

	c.record("CopyBuffer(%s -> %s)", src.name, dst.name)
	return c.driver.CmdCopyBuffer(c.native, src.native, dst.native, hal.BufferCopy{
		SrcOffset: 0,
		DstOffset: dstOffset,
		Size:      size,
	})
}

// CopyBufferToImage copies buffer contents into an image in the TransferDstOptimal layout.
// Without regions the buffer fills the first layer of mip level 0.
func (c *CommandBuffer) CopyBufferToImage(src *Buffer, dst *Image, regions ...hal.BufferImageCopy) error {
	err := c.assertRecording("CopyBufferToImage")
	if err != nil {
		return err
	}
	err = c.device.assertf(src != nil && dst != nil, "CopyBufferToImage requires a source and a destination")
	if err != nil {
		return err
	}

	if len(regions) == 0 {
		regions = []hal.BufferImageCopy{{
			ImageSubresource: hal.ImageSubresourceLayers{
				AspectMask: hal.ImageAspectColor,
				LayerCount: 1,
			},
			ImageExtent: hal.Extent3D{Width: dst.Width(), Height: dst.Height(), Depth: 1},
		}}
	}

	c.record("CopyBufferToImage(%s -> %s)", src.name, dst.name)
	return c.driver.CmdCopyBufferToImage(c.native, src.native, dst.native, hal.ImageLayoutTransferDstOptimal, regions...)
}

// CopyImage copies between images in the TransferSrcOptimal and TransferDstOptimal layouts.
// Without regions the whole of mip level 0 is copied.
func (c *CommandBuffer) CopyImage(src, dst *Image, regions ...hal.ImageCopy) error {
	err := c.assertRecording("CopyImage")
	if err != nil {
		return err
	}
	err = c.device.assertf(src != nil && dst != nil, "CopyImage requires a source and a destination")
	if err != nil {
		return err
	}

	if len(regions) == 0 {
		regions = []hal.ImageCopy{{
			SrcSubresource: hal.ImageSubresourceLayers{AspectMask: src.Format().Aspects(), LayerCount: 1},
			DstSubresource: hal.ImageSubresourceLayers{AspectMask: dst.Format().Aspects(), LayerCount: 1},
			Extent:         src.info.Extent,
		}}
	}

	c.record("CopyImage(%s -> %s)", src.name, dst.name)
	return c.driver.CmdCopyImage(c.native,
		src.native, hal.ImageLayoutTransferSrcOptimal,
		dst.native, hal.ImageLayoutTransferDstOptimal,
		regions...)
}

func blitCorners(image *Image, region BlitRegion) [2]hal.Offset3D {
	if region.Extent == (hal.Extent3D{}) {
		return [2]hal.Offset3D{
			region.Offset,
			{
				X: max(image.Width()>>region.MipLevel, 1),
				Y: max(image.Height()>>region.MipLevel, 1),
				Z: 1,
			},
		}
	}
	return [2]hal.Offset3D{
		region.Offset,
		{
			X: region.Offset.X + region.Extent.Width,
			Y: region.Offset.Y + region.Extent.Height,
			Z: region.Offset.Z + region.Extent.Depth,
		},
	}
}

func blitLayers(image *Image, region BlitRegion) hal.ImageSubresourceLayers {
	layers := hal.ImageSubresourceLayers{
		AspectMask:     image.Format().Aspects(),
		MipLevel:       region.MipLevel,
		BaseArrayLayer: region.BaseLayer,
		LayerCount:     region.LayerCount,
	}
	if layers.LayerCount == 0 {
		layers.LayerCount = 1
	}
	return layers
}

// Blit copies a region of src into a region of dst with scaling, using the TransferSrcOptimal
// and TransferDstOptimal layouts.
func (c *CommandBuffer) Blit(src, dst *Image, srcRegion, dstRegion BlitRegion, filter hal.Filter) error {
	err := c.assertRecording("Blit")
	if err != nil {
		return err
	}
	err = c.device.assertf(src != nil && dst != nil, "Blit requires a source and a destination")
	if err != nil {
		return err
	}

	c.record("Blit(%s -> %s)", src.name, dst.name)
	return c.driver.CmdBlitImage(c.native,
		src.native, hal.ImageLayoutTransferSrcOptimal,
		dst.native, hal.ImageLayoutTransferDstOptimal,
		filter,
		hal.ImageBlit{
			SrcSubresource: blitLayers(src, srcRegion),
			SrcOffsets:     blitCorners(src, srcRegion),
			DstSubresource: blitLayers(dst, dstRegion),
			DstOffsets:     blitCorners(dst, dstRegion),
		})
}

// UpdateBuffer writes a small amount of data inline into buffer. Both offset and len(data) must
// be multiples of 4, and data may not exceed 65536 bytes.
func (c *CommandBuffer) UpdateBuffer(buffer *Buffer, offset int, data []byte) error {
	err := c.assertRecording("UpdateBuffer")
	if err != nil {
		return err
	}
	err = c.device.assertf(buffer != nil && len(data) > 0 && len(data) <= 65536 && offset%4 == 0 && len(data)%4 == 0,
		"UpdateBuffer requires a buffer and 4 byte aligned data of at most 65536 bytes")
	if err != nil {
		return err
	}
	err = c.device.assertf(offset >= 0 && offset+len(data) <= buffer.Size(), "update of %d bytes at offset %d overruns buffer %q", len(data), offset, buffer.name)
	if err != nil {
		return err
	}

	c.record("UpdateBuffer(%s)", buffer.name)
	c.driver.CmdUpdateBuffer(c.native, buffer.native, offset, data)
	return nil
}

func (c *CommandBuffer) renderingAttachment(attachment RenderingAttachment, defaultLayout hal.ImageLayout) (hal.RenderingAttachmentInfo, error) {
	err := c.device.assertf(attachment.Image != nil && attachment.Image.view != nil, "rendering attachments require an image with a default view")
	if err != nil {
		return hal.RenderingAttachmentInfo{}, err
	}

	layout := attachment.Layout
	if layout == hal.ImageLayoutUndefined {
		layout = defaultLayout
	}

	return hal.RenderingAttachmentInfo{
		ImageView:   attachment.Image.view.native,
		ImageLayout: layout,
		LoadOp:      attachment.LoadOp,
		StoreOp:     attachment.StoreOp,
		ClearValue:  attachment.Clear,
	}, nil
}

// BeginRendering starts dynamic rendering into colors and depth. Each color attachment gets a
// viewport and scissor covering the image. renderArea defaults to the first scissor, or to the
// depth image when there are no color attachments.
func (c *CommandBuffer) BeginRendering(colors []RenderingAttachment, depth *RenderingAttachment, renderArea *hal.Rect2D) error {
	err := c.assertRecording("BeginRendering")
	if err != nil {
		return err
	}
	err = c.device.assertf(len(colors) > 0 || (depth != nil && depth.Image != nil), "BeginRendering requires a color or depth attachment")
	if err != nil {
		return err
	}

	info := hal.RenderingInfo{LayerCount: 1}
	viewports := make([]hal.Viewport, 0, len(colors))
	scissors := make([]hal.Rect2D, 0, len(colors))
	sizeTo := func(image *Image) {
		viewports = append(viewports, hal.Viewport{
			Width:    float32(image.Width()),
			Height:   float32(image.Height()),
			MaxDepth: 1,
		})
		scissors = append(scissors, hal.Rect2D{
			Extent: hal.Extent2D{Width: image.Width(), Height: image.Height()},
		})
	}

	for _, color := range colors {
		attachment, err := c.renderingAttachment(color, hal.ImageLayoutColorAttachmentOptimal)
		if err != nil {
			return err
		}
		info.ColorAttachments = append(info.ColorAttachments, attachment)
		sizeTo(color.Image)
	}

	if depth != nil && depth.Image != nil {
		attachment, err := c.renderingAttachment(*depth, hal.ImageLayoutDepthStencilAttachmentOptimal)
		if err != nil {
			return err
		}
		info.DepthAttachment = &attachment
		if depth.Image.Format().IsStencil() {
			stencil := attachment
			info.StencilAttachment = &stencil
		}
		if len(colors) == 0 {
			sizeTo(depth.Image)
		}
	}

	if renderArea != nil {
		info.RenderArea = *renderArea
	} else {
		info.RenderArea = scissors[0]
	}

	graphics := &c.command.graphics
	graphics.colorAttachmentCount = len(colors)
	graphics.sampleCount = hal.SampleCount1
	if len(colors) > 0 && colors[0].Image.info.Samples != 0 {
		graphics.sampleCount = colors[0].Image.info.Samples
	} else if len(colors) == 0 && depth.Image.info.Samples != 0 {
		graphics.sampleCount = depth.Image.info.Samples
	}

	c.breadcrumbs.PushScope("Rendering")
	c.driver.CmdSetViewports(c.native, viewports)
	c.driver.CmdSetScissors(c.native, scissors)
	return c.driver.CmdBeginRendering(c.native, info)
}

func (c *CommandBuffer) EndRendering() error {
	err := c.assertRecording("EndRendering")
	if err != nil {
		return err
	}

	c.breadcrumbs.PopScope()
	return c.driver.CmdEndRendering(c.native)
}

func (c *CommandBuffer) debugLabels() bool { return c.device.features.Enabled.DebugUtils }

// BeginDebugLabel opens a labeled region. Labels also scope the breadcrumbs recorded inside.
func (c *CommandBuffer) BeginDebugLabel(label hal.DebugLabel) {
	c.breadcrumbs.PushScope(label.Name)
	if c.debugLabels() {
		c.driver.CmdBeginDebugLabel(c.native, label)
	}
}

func (c *CommandBuffer) EndDebugLabel() {
	c.breadcrumbs.PopScope()
	if c.debugLabels() {
		c.driver.CmdEndDebugLabel(c.native)
	}
}

func (c *CommandBuffer) InsertDebugLabel(label hal.DebugLabel) {
	c.breadcrumbs.Record(label.Name)
	if c.debugLabels() {
		c.driver.CmdInsertDebugLabel(c.native, label)
	}
}

// ResetQueryPool resets count queries from first. A count of zero or less resets the rest of the
// pool.
func (c *CommandBuffer) ResetQueryPool(pool *QueryPool, first, count int) error {
	err := c.assertRecording("ResetQueryPool")
	if err != nil {
		return err
	}
	err = c.device.assertf(pool != nil && first >= 0 && first < pool.QueryCount(), "ResetQueryPool requires a pool and a query in range")
	if err != nil {
		return err
	}

	if count <= 0 {
		count = pool.QueryCount() - first
	}
	c.driver.CmdResetQueryPool(c.native, pool.native, first, count)
	return nil
}

func (c *CommandBuffer) WriteTimestamp(stage hal.PipelineStageFlags, pool *QueryPool, query int) error {
	err := c.assertRecording("WriteTimestamp")
	if err != nil {
		return err
	}
	err = c.device.assertf(pool != nil && pool.Type() == hal.QueryTypeTimestamp, "WriteTimestamp requires a timestamp pool")
	if err != nil {
		return err
	}
	err = c.device.assertf(query >= 0 && query < pool.QueryCount(), "query %d is out of range", query)
	if err != nil {
		return err
	}

	c.driver.CmdWriteTimestamp(c.native, stage, pool.native, query)
	return nil
}

func (c *CommandBuffer) BeginQuery(pool *QueryPool, query int, precise bool) error {
	err := c.assertRecording("BeginQuery")
	if err != nil {
		return err
	}
	err = c.device.assertf(pool != nil && pool.Type() != hal.QueryTypeTimestamp, "BeginQuery requires an occlusion or pipeline statistics pool")
	if err != nil {
		return err
	}
	err = c.device.assertf(query >= 0 && query < pool.QueryCount(), "query %d is out of range", query)
	if err != nil {
		return err
	}

	c.driver.CmdBeginQuery(c.native, pool.native, query, precise)
	return nil
}

func (c *CommandBuffer) EndQuery(pool *QueryPool, query int) error {
	err := c.assertRecording("EndQuery")
	if err != nil {
		return err
	}
	err = c.device.assertf(pool != nil && query >= 0 && query < pool.QueryCount(), "EndQuery requires a pool and a query in range")
	if err != nil {
		return err
	}

	c.driver.CmdEndQuery(c.native, pool.native, query)
	return nil
}
