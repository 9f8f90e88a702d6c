package core

import "fmt"

// Stage is one named phase of the ingestion pipeline. Stages are totally
// ordered; ordering is enforced through an explicit index table rather than
// string comparison.
type Stage string

const (
	StageValidation Stage = "validation"
	StageChunking   Stage = "chunking"
	StageEmbedding  Stage = "embedding"
	StageStoring    Stage = "storing"
	StageCompleted  Stage = "completed"
	StageFailed     Stage = "failed"
)

// stageIndex is the total order over pipeline stages.
var stageIndex = map[Stage]int{
	StageValidation: 0,
	StageChunking:   1,
	StageEmbedding:  2,
	StageStoring:    3,
	StageCompleted:  4,
	StageFailed:     4, // terminal, same rank as completed
}

// stageRange maps each stage to the disjoint slice of the 0-100 percent range
// it contributes. The mapping is a deployment-stable convention: a polling
// reader reconstructs overall percent from the latest snapshot alone.
var stageRange = map[Stage][2]int{
	StageValidation: {0, 10},
	StageChunking:   {10, 70},
	StageEmbedding:  {70, 95},
	StageStoring:    {95, 100},
	StageCompleted:  {100, 100},
	StageFailed:     {0, 100},
}

// StageIndex returns the position of s in the stage order, or -1 for an
// unknown stage.
func StageIndex(s Stage) int {
	idx, ok := stageIndex[s]
	if !ok {
		return -1
	}
	return idx
}

// StagePercent maps a fraction of completion within stage s (0..1) onto the
// overall 0-100 percent range.
func StagePercent(s Stage, fraction float64) int {
	r, ok := stageRange[s]
	if !ok {
		return 0
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return r[0] + int(fraction*float64(r[1]-r[0]))
}

// JobProgress is the externally visible progress snapshot of a job. Only one
// stage is active at a time; Percent is monotonically non-decreasing over the
// lifetime of a job.
type JobProgress struct {
	Stage        Stage
	Percent      int
	Message      string
	CurrentChunk int // 0 when the stage has no chunk counters
	TotalChunks  int
}

// Advance moves the progress to stage s at the given fraction of that stage's
// range. Percent never decreases and stage order never goes backwards: an
// out-of-order update is rejected.
func (p *JobProgress) Advance(s Stage, fraction float64, message string, current, total int) error {
	if StageIndex(s) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownStage, s)
	}
	if p.Stage != "" && StageIndex(s) < StageIndex(p.Stage) {
		return fmt.Errorf("%w: %s after %s", ErrStageOrder, s, p.Stage)
	}
	percent := StagePercent(s, fraction)
	if percent < p.Percent {
		percent = p.Percent
	}
	p.Stage = s
	p.Percent = percent
	p.Message = message
	p.CurrentChunk = current
	p.TotalChunks = total
	return nil
}
