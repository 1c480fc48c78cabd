package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ClearCommand fills a texture with a single color.
type ClearCommand struct {
	device *wgpu.Device
	queue  *wgpu.Queue
}

func NewClear(ctx *Context) *ClearCommand {
	return &ClearCommand{device: ctx.Device, queue: ctx.Queue}
}

// Clear records a render pass that does nothing but load the clear color
// into target, and submits it to the queue.
func (c *ClearCommand) Clear(target *wgpu.TextureView, color Color) error {
	enc, err := c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})
	if err != nil {
		return fmt.Errorf("create encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: color.ToWGPU(),
		}},
	})

	err = pass.End()
	pass.Release()

	if err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmd, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Render Encoder"})
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}

	defer cmd.Release()

	c.queue.Submit(cmd)

	return nil
}
