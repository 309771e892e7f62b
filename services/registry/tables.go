package registry

import (
	"fmt"

	"capstone-leads/lib/configutil"

	_ "embed"
)

// Other is the group and trade assigned to unknown occupation codes.
const Other = "Other"

//go:embed trades.json5
var tablesJSON5 []byte

type GroupConfig struct {
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

// TablesConfig is the on-disk form of the classification tables.
type TablesConfig struct {
	Trades   map[string]string `json:"trades"`
	Groups   []GroupConfig     `json:"groups"`
	Counties map[string]string `json:"counties"`
}

// Tables resolves occupation and county codes to display names.
type Tables struct {
	trades      map[string]string
	groups      []GroupConfig
	counties    map[string]string
	codeToGroup map[string]string
}

type Classification struct {
	Group string
	Trade string
}

func NewTables(cfg TablesConfig) Tables {
	codeToGroup := map[string]string{}
	for _, g := range cfg.Groups {
		for _, code := range g.Codes {
			codeToGroup[code] = g.Name
		}
	}
	return Tables{
		trades:      cfg.Trades,
		groups:      cfg.Groups,
		counties:    cfg.Counties,
		codeToGroup: codeToGroup,
	}
}

// DefaultTables are the tables compiled into the binary.
func DefaultTables() (Tables, error) {
	cfg, err := configutil.Parse[TablesConfig](tablesJSON5)
	if err != nil {
		return Tables{}, fmt.Errorf("parse embedded trade tables: %w", err)
	}
	return NewTables(cfg), nil
}

// LoadTables merges `path` (and its .local variant) over the compiled in
// tables, a missing file leaves the defaults untouched.
func LoadTables(path string) (Tables, error) {
	defaults, err := configutil.Parse[TablesConfig](tablesJSON5)
	if err != nil {
		return Tables{}, fmt.Errorf("parse embedded trade tables: %w", err)
	}
	cfg, err := configutil.ReadConfigOr(path, defaults)
	if err != nil {
		return Tables{}, err
	}
	return NewTables(cfg), nil
}

// Classify resolves the group and trade of an occupation code. The two
// lookups fall back to Other independently of each other.
func (t Tables) Classify(occupationCode string) Classification {
	c := Classification{Group: Other, Trade: Other}
	if group, ok := t.codeToGroup[occupationCode]; ok {
		c.Group = group
	}
	if trade, ok := t.trades[occupationCode]; ok {
		c.Trade = trade
	}
	return c
}

// County returns the county name for a code, or the code itself.
func (t Tables) County(code string) string {
	name, ok := t.counties[code]
	if !ok {
		return code
	}
	return name
}

func (t Tables) Groups() []GroupConfig {
	return t.groups
}

// Validate returns an error naming every group code that has no trade name.
func (t Tables) Validate() error {
	var missing []string
	for _, g := range t.groups {
		for _, code := range g.Codes {
			if _, ok := t.trades[code]; !ok {
				missing = append(missing, fmt.Sprintf("%s (%s)", code, g.Name))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("group codes without a trade name: %v", missing)
	}
	return nil
}
