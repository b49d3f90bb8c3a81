package params

import (
	"sort"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

// ForkScheduleEntry activates Version at Epoch.
type ForkScheduleEntry struct {
	Name    string
	Epoch   primitives.Epoch
	Version [fieldparams.VersionLength]byte
}

// ForkSchedule is a list of fork activations ordered by ascending epoch.
type ForkSchedule []ForkScheduleEntry

// Sort orders the schedule by activation epoch. Entries sharing an epoch keep
// their relative order so the later declared fork wins lookups.
func (s ForkSchedule) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Epoch < s[j].Epoch
	})
}

// Validate checks the schedule is non-empty, ordered, and starts at genesis.
func (s ForkSchedule) Validate() error {
	if len(s) == 0 {
		return errors.New("fork schedule is empty")
	}
	if s[0].Epoch != 0 {
		return errors.Errorf("first fork activates at epoch %d, want 0", s[0].Epoch)
	}
	for i := 1; i < len(s); i++ {
		if s[i].Epoch < s[i-1].Epoch {
			return errors.Errorf("fork %s at epoch %d precedes %s at epoch %d",
				s[i].Name, s[i].Epoch, s[i-1].Name, s[i-1].Epoch)
		}
	}
	return nil
}

// entryAt returns the most recent entry activated at or before epoch.
func (s ForkSchedule) entryAt(epoch primitives.Epoch) (ForkScheduleEntry, bool) {
	// First index whose activation is strictly after epoch.
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Epoch > epoch
	})
	if i == 0 {
		return ForkScheduleEntry{}, false
	}
	return s[i-1], true
}

// VersionAt returns the fork version active at epoch.
func (s ForkSchedule) VersionAt(epoch primitives.Epoch) [fieldparams.VersionLength]byte {
	e, _ := s.entryAt(epoch)
	return e.Version
}

// NameAt returns the name of the fork active at epoch.
func (s ForkSchedule) NameAt(epoch primitives.Epoch) string {
	e, ok := s.entryAt(epoch)
	if !ok {
		return ""
	}
	return e.Name
}

// Copy returns a deep copy of the schedule.
func (s ForkSchedule) Copy() ForkSchedule {
	cp := make(ForkSchedule, len(s))
	copy(cp, s)
	return cp
}
