package driver

// Stage is the step a file is in while TokenizeDir runs.
type Stage string

const (
	StageLoad     Stage = "load"
	StageLex      Stage = "lex"
	StageClassify Stage = "classify"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports a status change of one file. File is the path as listed by
// SourceFiles.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// ProgressSink receives events; it is called from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}

func (o Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(ev)
	}
}
