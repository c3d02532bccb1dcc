package game

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// RunID tags every diagnostic line printed during a single process run, so
// logs from concurrent local runs (or a crash report pasted out of context)
// can be told apart. Grounded on the teacher's plain fmt.Fprintf(os.Stderr,
// ...) startup logging, with the run-id idiom adopted from the pack's
// uuid.New().String() usage.
var RunID = uuid.New().String()

func logStartup(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] "+format+"\n", append([]any{RunID}, args...)...)
}

func logWarn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] warning: "+format+"\n", append([]any{RunID}, args...)...)
}
