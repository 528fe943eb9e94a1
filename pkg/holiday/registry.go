// Package holiday provides the public-holiday lookup table used to annotate
// calendar days. The built-in table is demonstration data for 2026 and can be
// swapped for an external file.
package holiday

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"tableflip.dev/alpha/pkg/dates"
)

// Registry maps day keys to holiday labels. Lookups are exact-match; an
// absent key simply means not a holiday.
type Registry struct {
	mu   sync.RWMutex
	days map[dates.DayKey]string
	path string
}

// Default returns the registry seeded with the 2026 demonstration table.
func Default() *Registry {
	return &Registry{days: map[dates.DayKey]string{
		"2026-01-01": "New Year",
		"2026-01-26": "Republic Day",
		"2026-03-03": "Holi",
		"2026-04-03": "Good Friday",
		"2026-05-01": "May Day",
		"2026-08-15": "Independence Day",
		"2026-10-02": "Gandhi Jayanti",
		"2026-11-08": "Diwali",
		"2026-12-25": "Christmas",
	}}
}

// Load reads a holiday table from a YAML file of day-key to label entries,
// replacing the built-in data.
func Load(path string) (*Registry, error) {
	r := &Registry{days: map[dates.DayKey]string{}, path: path}
	if err := r.reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) reload() error {
	v := viper.New()
	v.SetConfigFile(r.path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("holiday: read %s: %w", r.path, err)
	}
	loaded := map[dates.DayKey]string{}
	for key, label := range v.AllSettings() {
		k := dates.DayKey(key)
		if !k.Valid() {
			return fmt.Errorf("holiday: %q is not a day key", key)
		}
		loaded[k] = fmt.Sprintf("%v", label)
	}
	r.mu.Lock()
	r.days = loaded
	r.mu.Unlock()
	return nil
}

// Lookup returns the holiday label for the day, if any.
func (r *Registry) Lookup(day dates.DayKey) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	label, ok := r.days[day]
	return label, ok
}

// Len reports the number of registered holidays.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.days)
}
