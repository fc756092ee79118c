// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Session describes the machine and moment of a sweep.  Timings are only
// comparable within a session.
type Session struct {
	ID     string
	Arch   string
	Os     string
	NumCPU int
	Start  time.Time
}

func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Arch:   runtime.GOARCH,
		Os:     runtime.GOOS,
		NumCPU: runtime.NumCPU(),
		Start:  time.Now()}
}

// LogArgs gives s as alternating keys and values for a logger.
func (s *Session) LogArgs() []any {
	return []any{
		"run_id", s.ID,
		"os", s.Os,
		"arch", s.Arch,
		"ncpu", s.NumCPU,
		"start", s.Start.Format(time.RFC3339)}
}
