package session

import (
	"errors"
	"sync"
)

// ErrUnsupported is returned by Start once the client has reported that its
// environment cannot do speech recognition. The condition is permanent for
// the session; recording stays disabled while navigation keeps working.
var ErrUnsupported = errors.New("speech capture is not supported in this session")

// ErrNotRecording is returned when a fragment arrives outside a recording.
var ErrNotRecording = errors.New("no recording in progress")

// Fragment is one increment of transcribed speech.
type Fragment struct {
	Text string
}

// Recorder bridges the client's continuous speech recognition to the answer
// accumulator. Fragments flow through a channel consumed by a single
// goroutine, so appends happen in arrival order and nothing else writes the
// buffer while a capture is live.
//
// mu serializes the recording state (Start/Stop/Push ordering); accMu guards
// the accumulator, which the consumer goroutine writes and the controller
// reads. The consumer never touches mu, so a Push blocked on a full channel
// cannot deadlock against it.
type Recorder struct {
	mu          sync.Mutex
	recording   bool
	unsupported bool
	interim     string
	fragments   chan Fragment
	drained     chan struct{}

	accMu sync.Mutex
	acc   *Accumulator
}

func NewRecorder(acc *Accumulator) *Recorder {
	return &Recorder{acc: acc}
}

// Start begins a capture. Calling Start while already recording is a no-op.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unsupported {
		return ErrUnsupported
	}
	if r.recording {
		return nil
	}

	r.recording = true
	r.interim = ""
	r.fragments = make(chan Fragment, 16)
	r.drained = make(chan struct{})

	go func(fragments chan Fragment, drained chan struct{}) {
		for frag := range fragments {
			r.accMu.Lock()
			r.acc.Append(frag.Text)
			r.accMu.Unlock()
		}
		close(drained)
	}(r.fragments, r.drained)

	return nil
}

// Push delivers a finalized fragment into the stream.
func (r *Recorder) Push(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return ErrNotRecording
	}
	r.fragments <- Fragment{Text: text}
	return nil
}

// PushInterim records a provisional transcript that has not been finalized
// yet. Successive interim results replace each other; Stop flushes the last
// one as a final fragment.
func (r *Recorder) PushInterim(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return ErrNotRecording
	}
	r.interim = text
	return nil
}

// Stop ends the capture, waits for queued fragments to drain, and flushes any
// pending interim transcript as a last fragment. Stop is idempotent.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return
	}
	r.recording = false
	interim := r.interim
	r.interim = ""
	close(r.fragments)
	drained := r.drained
	r.fragments = nil
	r.drained = nil
	r.mu.Unlock()

	<-drained

	if interim != "" {
		r.accMu.Lock()
		r.acc.Append(interim)
		r.accMu.Unlock()
	}
}

// MarkUnsupported puts the recorder into its terminal unsupported state.
func (r *Recorder) MarkUnsupported() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsupported = true
}

func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

func (r *Recorder) Unsupported() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unsupported
}

// Transcript returns the accumulated answer so far.
func (r *Recorder) Transcript() string {
	r.accMu.Lock()
	defer r.accMu.Unlock()
	return r.acc.String()
}

// TranscriptLen returns the accumulated answer length in bytes.
func (r *Recorder) TranscriptLen() int {
	r.accMu.Lock()
	defer r.accMu.Unlock()
	return r.acc.Len()
}

// ResetTranscript clears the accumulator for the next question or attempt.
func (r *Recorder) ResetTranscript() {
	r.accMu.Lock()
	defer r.accMu.Unlock()
	r.acc.Reset()
}
