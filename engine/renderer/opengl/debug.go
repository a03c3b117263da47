package opengl

import (
	"fmt"

	"github.com/spaghettifunk/glrhi/engine/containers"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

const DEBUG_MESSAGE_QUEUE_SIZE = 256

// verifyStatus reads the driver error flag and logs anything set.
func verifyStatus(fns gl.Functions) error {
	code := fns.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	core.LogError("OpenGL error code = %d (%s)", uint32(code), gl.ErrorString(code))
	return fmt.Errorf("%s: %w", gl.ErrorString(code), core.ErrDriver)
}

/** @brief One message reported through the driver debug output. */
type DebugMessage struct {
	Source   gl.Enum
	Type     gl.Enum
	ID       uint32
	Severity gl.Enum
	Message  string
}

// debugOutput collects driver messages from the callback so they are logged
// on the render thread between frames.
type debugOutput struct {
	queue   *containers.RingQueue[DebugMessage]
	dropped int
}

func newDebugOutput() *debugOutput {
	return &debugOutput{queue: containers.NewRingQueue[DebugMessage](DEBUG_MESSAGE_QUEUE_SIZE)}
}

func (d *debugOutput) callback(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	if typ == gl.DEBUG_TYPE_OTHER || severity == gl.DEBUG_SEVERITY_NOTIFICATION {
		return
	}
	if err := d.queue.Enqueue(DebugMessage{Source: source, Type: typ, ID: id, Severity: severity, Message: message}); err != nil {
		d.dropped++
	}
}

// flush logs every queued message and returns how many were written.
func (d *debugOutput) flush() int {
	n := 0
	for !d.queue.IsEmpty() {
		msg, err := d.queue.Dequeue()
		if err != nil {
			break
		}
		switch msg.Severity {
		case gl.DEBUG_SEVERITY_HIGH:
			core.LogError("OpenGL debug: %s", msg.Message)
		case gl.DEBUG_SEVERITY_MEDIUM:
			core.LogWarn("OpenGL debug: %s", msg.Message)
		default:
			core.LogDebug("OpenGL debug: %s", msg.Message)
		}
		n++
	}
	if d.dropped > 0 {
		core.LogWarn("OpenGL debug: %d messages dropped", d.dropped)
		d.dropped = 0
	}
	return n
}
