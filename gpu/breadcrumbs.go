package gpu

import (
	"fmt"
	"strings"
	"sync"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

type BreadcrumbState int32

const (
	BreadcrumbPending BreadcrumbState = iota
	BreadcrumbInProgress
	BreadcrumbCompleted
)

var breadcrumbStateMapping = make(map[BreadcrumbState]string)

func init() {
	breadcrumbStateMapping[BreadcrumbPending] = "Pending"
	breadcrumbStateMapping[BreadcrumbInProgress] = "InProgress"
	breadcrumbStateMapping[BreadcrumbCompleted] = "Completed"
}

func (s BreadcrumbState) String() string {
	str, ok := breadcrumbStateMapping[s]
	if !ok {
		return "unknown"
	}
	return str
}

// Breadcrumb is one recorded operation. Scope is the index of the enclosing scope record, or -1
// at the top level.
type Breadcrumb struct {
	Name  string
	Scope int
	Depth int
	State BreadcrumbState
}

// BreadcrumbTracker records what a command buffer was asked to do, for reporting after a device
// fault. It never affects recorded work. A disabled or nil tracker records nothing.
type BreadcrumbTracker struct {
	mutex   sync.Mutex
	enabled bool
	records []Breadcrumb
	scopes  []int
}

func NewBreadcrumbTracker(enabled bool) *BreadcrumbTracker {
	return &BreadcrumbTracker{enabled: enabled}
}

func (t *BreadcrumbTracker) Enabled() bool {
	return t != nil && t.enabled
}

func (t *BreadcrumbTracker) SetEnabled(enabled bool) {
	if t == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.enabled = enabled
}

func (t *BreadcrumbTracker) appendLocked(name string) int {
	scope := -1
	if len(t.scopes) > 0 {
		scope = t.scopes[len(t.scopes)-1]
	}
	t.records = append(t.records, Breadcrumb{
		Name:  name,
		Scope: scope,
		Depth: len(t.scopes),
		State: BreadcrumbPending,
	})
	return len(t.records) - 1
}

// Record adds an operation to the current scope.
func (t *BreadcrumbTracker) Record(name string) {
	if !t.Enabled() {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.appendLocked(name)
}

// PushScope adds a record and nests the following records under it until PopScope.
func (t *BreadcrumbTracker) PushScope(name string) {
	if !t.Enabled() {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.scopes = append(t.scopes, t.appendLocked(name))
}

func (t *BreadcrumbTracker) PopScope() {
	if !t.Enabled() {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if len(t.scopes) > 0 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

func (t *BreadcrumbTracker) advance(from, to BreadcrumbState) {
	if t == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for i := range t.records {
		if t.records[i].State == from {
			t.records[i].State = to
		}
	}
}

// MarkSubmitted moves every pending record to InProgress.
func (t *BreadcrumbTracker) MarkSubmitted() { t.advance(BreadcrumbPending, BreadcrumbInProgress) }

// MarkCompleted moves every in-progress record to Completed.
func (t *BreadcrumbTracker) MarkCompleted() { t.advance(BreadcrumbInProgress, BreadcrumbCompleted) }

func (t *BreadcrumbTracker) Records() []Breadcrumb {
	if t == nil {
		return nil
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return append([]Breadcrumb(nil), t.records...)
}

func (t *BreadcrumbTracker) Reset() {
	if t == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.records = t.records[:0]
	t.scopes = t.scopes[:0]
}

// GenerateReport renders the records as an indented tree. Records that never completed are the
// likely location of a fault.
func (t *BreadcrumbTracker) GenerateReport() string {
	records := t.Records()

	var sb strings.Builder
	sb.WriteString("=== GPU Breadcrumbs ===\n")
	var unfinished int
	for _, record := range records {
		fmt.Fprintf(&sb, "%s[%s] %s\n", strings.Repeat("  ", record.Depth), record.State, record.Name)
		if record.State != BreadcrumbCompleted {
			unfinished++
		}
	}
	fmt.Fprintf(&sb, "%d of %d operations did not complete\n", unfinished, len(records))
	return sb.String()
}

func (t *BreadcrumbTracker) BuildStatsString() string {
	records := t.Records()

	writer := jwriter.NewWriter()
	arr := writer.Array()
	for _, record := range records {
		o := arr.Object()
		o.Name("Name").String(record.Name)
		o.Name("Depth").Int(record.Depth)
		o.Name("Scope").Int(record.Scope)
		o.Name("State").String(record.State.String())
		o.End()
	}
	arr.End()
	return string(writer.Bytes())
}
