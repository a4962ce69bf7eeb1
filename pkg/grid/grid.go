package grid

import (
	"fmt"
	"hash/fnv"
	"path"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/heading"
)

// DefaultHeadingLevel is the level used for feature titles.
const DefaultHeadingLevel heading.Level = 3

// IconRole is the ARIA role attached to feature icons.
const IconRole = "img"

// Option customises Build.
type Option func(*config)

type config struct {
	classes        Classes
	headingLevel   heading.Level
	headingAnchors bool
}

// WithClasses overrides class names. Empty fields keep their defaults.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = cfg.classes.Merge(classes)
	}
}

// WithHeadingLevel changes the level used for feature titles.
func WithHeadingLevel(level heading.Level) Option {
	return func(cfg *config) {
		cfg.headingLevel = level.Clamp()
	}
}

// WithHeadingAnchors adds slug ids to feature headings.
func WithHeadingAnchors(enabled bool) Option {
	return func(cfg *config) {
		cfg.headingAnchors = enabled
	}
}

// Grid is the rendered features section.
type Grid struct {
	SectionClass   string  `json:"sectionClass"`
	ContainerClass string  `json:"containerClass"`
	RowClass       string  `json:"rowClass"`
	Blocks         []Block `json:"blocks"`
}

// Block is one feature card.
type Block struct {
	Index            int              `json:"index"`
	Key              string           `json:"key"`
	Class            string           `json:"class"`
	IconWrapperClass string           `json:"iconWrapperClass"`
	Icon             Icon             `json:"icon"`
	BodyClass        string           `json:"bodyClass"`
	Heading          heading.Heading  `json:"heading"`
	Description      feature.RichText `json:"description"`
}

// Icon is the icon slot of a block. Ref is resolved to markup by the output
// renderer's asset resolver.
type Icon struct {
	Ref   feature.IconRef `json:"ref"`
	Class string          `json:"class"`
	Role  string          `json:"role"`
}

// Build maps list to a Grid, one block per record in list order.
func Build(list feature.List, opts ...Option) Grid {
	cfg := config{
		classes:      DefaultClasses(),
		headingLevel: DefaultHeadingLevel,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	g := Grid{
		SectionClass:   cfg.classes.Section,
		ContainerClass: cfg.classes.Container,
		RowClass:       cfg.classes.Row,
		Blocks:         make([]Block, 0, list.Len()),
	}

	keys := blockKeys(list)
	for i, record := range list.All() {
		h := heading.New(cfg.headingLevel, record.Title())
		if cfg.headingAnchors {
			h = h.WithAnchor()
		}
		g.Blocks = append(g.Blocks, Block{
			Index:            i,
			Key:              keys[i],
			Class:            cfg.classes.Item,
			IconWrapperClass: cfg.classes.IconWrapper,
			Icon: Icon{
				Ref:   record.Icon(),
				Class: cfg.classes.Icon,
				Role:  IconRole,
			},
			BodyClass:   cfg.classes.Body,
			Heading:     h,
			Description: record.Description(),
		})
	}
	return g
}

// Reference builds the grid for the reference feature list.
func Reference() Grid {
	return Build(feature.Reference())
}

// Len returns the number of blocks.
func (g Grid) Len() int {
	return len(g.Blocks)
}

// Titles returns the heading text of every block in order.
func (g Grid) Titles() []string {
	titles := make([]string, 0, len(g.Blocks))
	for _, block := range g.Blocks {
		titles = append(titles, block.Heading.Text)
	}
	return titles
}

// IconRefs returns the distinct icon references in first-use order.
func (g Grid) IconRefs() []feature.IconRef {
	seen := make(map[feature.IconRef]struct{}, len(g.Blocks))
	refs := make([]feature.IconRef, 0, len(g.Blocks))
	for _, block := range g.Blocks {
		if _, ok := seen[block.Icon.Ref]; ok {
			continue
		}
		seen[block.Icon.Ref] = struct{}{}
		refs = append(refs, block.Icon.Ref)
	}
	return refs
}

// blockKeys derives a key per record from its own content. The title slug is
// used when no other record shares it; otherwise the icon name is appended,
// and records still colliding get a hash of their full content. Keys depend
// only on the records present, never on their positions, so reordering the
// list leaves every key unchanged. Identical records share a key.
func blockKeys(list feature.List) []string {
	records := list.Records()
	titles := make([]string, len(records))
	withIcon := make([]string, len(records))
	for i, record := range records {
		base := heading.Slug(record.Title())
		if base == "" {
			base = "feature"
		}
		titles[i] = base
		withIcon[i] = base
		if icon := iconSlug(record.Icon()); icon != "" {
			withIcon[i] = base + "-" + icon
		}
	}

	titleCount := countKeys(titles)
	iconCount := countKeys(withIcon)
	keys := make([]string, len(records))
	for i := range records {
		switch {
		case titleCount[titles[i]] == 1:
			keys[i] = titles[i]
		case iconCount[withIcon[i]] == 1:
			keys[i] = withIcon[i]
		default:
			keys[i] = titles[i] + "-" + contentHash(records[i])
		}
	}

	// A title slug can equal another record's title-and-icon key.
	owners := make(map[string]feature.Record, len(keys))
	shared := make(map[string]bool)
	for i, key := range keys {
		if owner, ok := owners[key]; ok && !owner.Equal(records[i]) {
			shared[key] = true
			continue
		}
		owners[key] = records[i]
	}
	for i, key := range keys {
		if shared[key] {
			keys[i] = titles[i] + "-" + contentHash(records[i])
		}
	}
	return keys
}

func countKeys(keys []string) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key]++
	}
	return counts
}

func iconSlug(ref feature.IconRef) string {
	name := path.Base(strings.TrimSpace(string(ref)))
	return heading.Slug(strings.TrimSuffix(name, path.Ext(name)))
}

func contentHash(record feature.Record) string {
	h := fnv.New32a()
	for _, part := range []string{record.Title(), string(record.Icon()), string(record.Description())} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%08x", h.Sum32())
}
