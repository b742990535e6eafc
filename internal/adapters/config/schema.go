package config

// Chartfile represents the structure of the gantt.yaml configuration file.
// All fields are optional; omitted fields fall back to the defaults
// (start today, Saturday+Sunday off, no holidays, no SVG output).
type Chartfile struct {
	Start        string   `yaml:"start"`
	WorkWeekends bool     `yaml:"work_weekends"`
	WeekendDays  []string `yaml:"weekend_days"`
	Holidays     []string `yaml:"holidays"`
	SVG          string   `yaml:"svg"`
}
