// Package radio provides phy.Radio implementations that do not need
// hardware: one logs transmissions, the other captures them for inspection.
package radio

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/hedzr/go-ringbuf/v2/mpmc"
	"github.com/sirupsen/logrus"
	"github.com/srg/blecore/pkg/phy"
)

// MaxCaptureSize bounds the capture ring buffer.
const MaxCaptureSize = 1 << 16

// Transmission is one buffer handed to a Radio.
type Transmission struct {
	Freq uint16
	Data []byte
}

// LogRadio logs every transmission and forwards it to Next, if set.
type LogRadio struct {
	Logger *logrus.Logger
	Next   phy.Radio
}

// Transmit implements phy.Radio.
func (r *LogRadio) Transmit(buf []byte, freq uint16) {
	if r.Logger != nil {
		r.Logger.WithFields(logrus.Fields{
			"freq_mhz": freq,
			"len":      len(buf),
			"data":     fmt.Sprintf("% X", buf),
		}).Debug("Radio transmit")
	}
	if r.Next != nil {
		r.Next.Transmit(buf, freq)
	}
}

// CaptureRadio keeps the most recent size transmissions, dropping the oldest
// on overflow. Transmit copies buf, since the caller owns it and may reuse it.
type CaptureRadio struct {
	mu          sync.Mutex
	size        uint32
	buffer      mpmc.RichOverlappedRingBuffer[Transmission]
	pending     int64 // transmissions since the last Drain
	overwritten int64 // drops settled by Drain
}

// NewCaptureRadio returns a CaptureRadio holding up to size transmissions.
func NewCaptureRadio(size uint32) (*CaptureRadio, error) {
	if size == 0 {
		return nil, fmt.Errorf("capture size must be > 0")
	}
	if size > MaxCaptureSize {
		return nil, fmt.Errorf("capture size %d exceeds maximum %d", size, MaxCaptureSize)
	}
	return &CaptureRadio{
		size:   size,
		buffer: mpmc.NewOverlappedRingBuffer[Transmission](ringCapacity(size)),
	}, nil
}

// ringCapacity returns the smallest power of two above size. The overlapped
// ring buffer rounds its capacity to a power of two and keeps one slot free,
// so this is the smallest capacity that retains size items.
func ringCapacity(size uint32) uint32 {
	return 1 << bits.Len32(size)
}

// Transmit implements phy.Radio.
func (r *CaptureRadio) Transmit(buf []byte, freq uint16) {
	data := make([]byte, len(buf))
	copy(data, buf)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.buffer.EnqueueM(Transmission{Freq: freq, Data: data}); err != nil {
		// The overlapped buffer only fails when closed.
		panic(fmt.Sprintf("CaptureRadio: unexpected enqueue error: %v", err))
	}
	r.pending++
}

// Drain removes and returns the captured transmissions, oldest first. At most
// size transmissions are returned.
func (r *CaptureRadio) Drain() ([]Transmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Transmission
	for !r.buffer.IsEmpty() {
		t, err := r.buffer.Dequeue()
		if err != nil {
			return out, fmt.Errorf("capture dequeue error: %w", err)
		}
		out = append(out, t)
	}
	if extra := len(out) - int(r.size); extra > 0 {
		out = out[extra:]
	}

	r.overwritten += r.pending - int64(len(out))
	r.pending = 0
	return out, nil
}

// Overwritten reports how many transmissions were dropped on overflow.
func (r *CaptureRadio) Overwritten() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overwritten + max(0, r.pending-int64(r.size))
}
