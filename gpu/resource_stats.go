package gpu

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slices"
)

const gpuPackagePrefix = "github.com/vkngwrapper/forge/gpu."

type resourceCounter struct {
	created   int
	destroyed int
}

func (c resourceCounter) active() int { return c.created - c.destroyed }

type callSiteKey struct {
	kind ResourceType
	site string
}

type callSiteCount struct {
	site  string
	count int
}

// ResourceStats counts device objects by type and remembers where they were created. A nil
// *ResourceStats tracks nothing.
type ResourceStats struct {
	mutex     sync.Mutex
	counters  [resourceTypeCount]resourceCounter
	callSites *swiss.Map[callSiteKey, int]
}

func NewResourceStats() *ResourceStats {
	return &ResourceStats{
		callSites: swiss.NewMap[callSiteKey, int](64),
	}
}

// callSite returns the first caller outside this package.
func callSite() string {
	pcs := make([]uintptr, 16)
	count := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:count])

	site := "unknown"
	for {
		frame, more := frames.Next()
		site = fmt.Sprintf("%s:%d", frame.File, frame.Line)
		if !strings.HasPrefix(frame.Function, gpuPackagePrefix) || strings.HasSuffix(frame.File, "_test.go") {
			return site
		}
		if !more {
			return site
		}
	}
}

func (s *ResourceStats) trackCreated(kind ResourceType) {
	if s == nil {
		return
	}
	site := callSite()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.counters[kind].created++
	key := callSiteKey{kind: kind, site: site}
	count, _ := s.callSites.Get(key)
	s.callSites.Put(key, count+1)
}

func (s *ResourceStats) trackDestroyed(kind ResourceType) {
	if s == nil {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.counters[kind].destroyed++
}

func (s *ResourceStats) Created(kind ResourceType) int {
	if s == nil {
		return 0
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.counters[kind].created
}

func (s *ResourceStats) Destroyed(kind ResourceType) int {
	if s == nil {
		return 0
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.counters[kind].destroyed
}

// Active returns the number of objects of kind created but not yet destroyed.
func (s *ResourceStats) Active(kind ResourceType) int {
	if s == nil {
		return 0
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.counters[kind].active()
}

// Leaks returns the types with live objects, in ResourceType order.
func (s *ResourceStats) Leaks() []ResourceType {
	if s == nil {
		return nil
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.leaksLocked()
}

func (s *ResourceStats) leaksLocked() []ResourceType {
	var leaks []ResourceType
	for kind := ResourceType(0); kind < resourceTypeCount; kind++ {
		if s.counters[kind].active() > 0 {
			leaks = append(leaks, kind)
		}
	}
	return leaks
}

func (s *ResourceStats) callSitesLocked(kind ResourceType) []callSiteCount {
	var sites []callSiteCount
	s.callSites.Iter(func(key callSiteKey, count int) bool {
		if key.kind == kind {
			sites = append(sites, callSiteCount{site: key.site, count: count})
		}
		return false
	})
	slices.SortFunc(sites, func(left, right callSiteCount) int {
		if left.count != right.count {
			return right.count - left.count
		}
		return strings.Compare(left.site, right.site)
	})
	return sites
}

// GenerateReport renders the counters, creation sites and leaks as text.
func (s *ResourceStats) GenerateReport() string {
	if s == nil {
		return "resource tracking disabled\n"
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var sb strings.Builder
	sb.WriteString("=== Resource Statistics ===\n")
	fmt.Fprintf(&sb, "%-20s %10s %10s %10s\n", "Type", "Created", "Destroyed", "Active")
	for kind := ResourceType(0); kind < resourceTypeCount; kind++ {
		counter := s.counters[kind]
		if counter.created == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%-20s %10d %10d %10d\n", kind, counter.created, counter.destroyed, counter.active())
	}

	leaks := s.leaksLocked()
	if len(leaks) == 0 {
		return sb.String()
	}

	sb.WriteString("\n=== Potential Leaks ===\n")
	for _, kind := range leaks {
		fmt.Fprintf(&sb, "%s: %d active\n", kind, s.counters[kind].active())
		for _, site := range s.callSitesLocked(kind) {
			fmt.Fprintf(&sb, "  %s (%d created)\n", site.site, site.count)
		}
	}

	return sb.String()
}

// BuildStatsString renders the same content as GenerateReport as JSON.
func (s *ResourceStats) BuildStatsString() string {
	writer := jwriter.NewWriter()
	obj := writer.Object()

	if s == nil {
		obj.Name("Enabled").Bool(false)
		obj.End()
		return string(writer.Bytes())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	obj.Name("Enabled").Bool(true)
	types := obj.Name("Types").Object()
	for kind := ResourceType(0); kind < resourceTypeCount; kind++ {
		counter := s.counters[kind]
		if counter.created == 0 {
			continue
		}

		o := types.Name(kind.String()).Object()
		o.Name("Created").Int(counter.created)
		o.Name("Destroyed").Int(counter.destroyed)
		o.Name("Active").Int(counter.active())

		sites := o.Name("CallSites").Array()
		for _, site := range s.callSitesLocked(kind) {
			siteObj := sites.Object()
			siteObj.Name("Site").String(site.site)
			siteObj.Name("Count").Int(site.count)
			siteObj.End()
		}
		sites.End()
		o.End()
	}
	types.End()

	leaks := obj.Name("Leaks").Array()
	for _, kind := range s.leaksLocked() {
		leaks.String(kind.String())
	}
	leaks.End()

	obj.End()
	return string(writer.Bytes())
}

// Reset zeroes every counter.
func (s *ResourceStats) Reset() {
	if s == nil {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.counters = [resourceTypeCount]resourceCounter{}
	s.callSites.Clear()
}
