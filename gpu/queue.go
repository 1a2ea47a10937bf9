package gpu

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/forge/hal"
	"github.com/vkngwrapper/forge/result"
)

// Fence is a GPU to host signal. Fences are handed out by a SyncPrimitiveAllocator.
type Fence struct {
	native hal.Fence
	device hal.Device
	inUse  bool
}

func (f *Fence) Native() hal.Fence { return f.native }

// Wait blocks until the fence is signaled or timeout elapses, which is reported as
// result.Timeout. A zero timeout polls the fence and reports result.NotReady if it is not yet
// signaled. A negative timeout waits indefinitely.
func (f *Fence) Wait(timeout time.Duration) error {
	if timeout == 0 {
		signaled, err := f.device.GetFenceStatus(f.native)
		if err != nil {
			return err
		}
		if !signaled {
			return result.ErrNotReady
		}
		return nil
	}

	if timeout < 0 {
		timeout = time.Duration(1<<63 - 1)
	}
	return f.device.WaitForFences(true, timeout, f.native)
}

func (f *Fence) Reset() error {
	err := f.device.ResetFences(f.native)
	if err != nil {
		return result.Wrap(err, result.RuntimeError, "failed to reset fence")
	}
	return nil
}

// Signaled polls the fence without blocking.
func (f *Fence) Signaled() (bool, error) {
	return f.device.GetFenceStatus(f.native)
}

// Semaphore orders work between queue submissions.
type Semaphore struct {
	native hal.Semaphore
	inUse  bool
}

func (s *Semaphore) Native() hal.Semaphore { return s.native }

// QueueSubmitInfo is one batch of a submission. WaitStages pairs with WaitSemaphores; when it is
// empty every wait blocks all commands.
type QueueSubmitInfo struct {
	CommandBuffers   []*CommandBuffer
	WaitSemaphores   []*Semaphore
	WaitStages       []hal.PipelineStageFlags
	SignalSemaphores []*Semaphore
}

// Queue is a device queue. Submission and idle waits are serialized per queue.
type Queue struct {
	logger      *slog.Logger
	device      hal.Device
	native      hal.Queue
	queueType   QueueType
	familyIndex int
	index       int

	mutex sync.Mutex
}

func (q *Queue) Native() hal.Queue { return q.native }
func (q *Queue) Type() QueueType   { return q.queueType }
func (q *Queue) FamilyIndex() int  { return q.familyIndex }
func (q *Queue) Index() int        { return q.index }

// Submit submits infos and signals fence, if one is given, once they all complete.
func (q *Queue) Submit(infos []QueueSubmitInfo, fence *Fence) error {
	q.logger.Debug("Queue::Submit")

	submits := make([]hal.SubmitInfo, 0, len(infos))
	for _, info := range infos {
		submit := hal.SubmitInfo{
			WaitDstStageMask: info.WaitStages,
		}

		for _, cmd := range info.CommandBuffers {
			if cmd.state != CommandBufferStateExecutable {
				return result.Newf(result.RuntimeError, "command buffer submitted in the %s state", cmd.state)
			}
			submit.CommandBuffers = append(submit.CommandBuffers, cmd.native)
		}

		for _, semaphore := range info.WaitSemaphores {
			submit.WaitSemaphores = append(submit.WaitSemaphores, semaphore.native)
		}
		if len(submit.WaitDstStageMask) == 0 && len(submit.WaitSemaphores) > 0 {
			submit.WaitDstStageMask = make([]hal.PipelineStageFlags, len(submit.WaitSemaphores))
			for i := range submit.WaitDstStageMask {
				submit.WaitDstStageMask[i] = hal.PipelineStageAllCommands
			}
		}
		if len(submit.WaitDstStageMask) != len(submit.WaitSemaphores) {
			return result.Newf(result.ArgumentOutOfRange, "%d wait stages were provided for %d wait semaphores", len(submit.WaitDstStageMask), len(submit.WaitSemaphores))
		}

		for _, semaphore := range info.SignalSemaphores {
			submit.SignalSemaphores = append(submit.SignalSemaphores, semaphore.native)
		}

		submits = append(submits, submit)
	}

	var nativeFence hal.Fence
	if fence != nil {
		nativeFence = fence.native
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()

	err := q.device.QueueSubmit(q.native, nativeFence, submits...)
	if err != nil {
		return errors.Wrapf(err, "failed to submit to %s queue", q.queueType)
	}

	for _, info := range infos {
		for _, cmd := range info.CommandBuffers {
			cmd.breadcrumbs.MarkSubmitted()
		}
	}
	return nil
}

func (q *Queue) WaitIdle() error {
	q.logger.Debug("Queue::WaitIdle")

	q.mutex.Lock()
	defer q.mutex.Unlock()

	return q.device.QueueWaitIdle(q.native)
}
