package engine

import "context"

// RecordingRunner records commands instead of executing them. Hook, if set,
// runs for every command and may simulate side effects or return an error;
// a failing command is still recorded.
type RecordingRunner struct {
	Commands []Command
	Hook     func(cmd Command) error
}

// Run records cmd and calls Hook.
func (r *RecordingRunner) Run(_ context.Context, cmd Command) error {
	r.Commands = append(r.Commands, cmd)
	if r.Hook != nil {
		return r.Hook(cmd)
	}
	return nil
}

// Lines returns the recorded command lines in order.
func (r *RecordingRunner) Lines() []string {
	out := make([]string, 0, len(r.Commands))
	for _, c := range r.Commands {
		out = append(out, c.String())
	}
	return out
}

// Count returns how many recorded commands have the given name.
func (r *RecordingRunner) Count(name string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Name == name {
			n++
		}
	}
	return n
}
