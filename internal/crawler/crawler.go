package crawler

import (
	"fmt"
	"io"
	"log/slog"

	"fcrawl/internal/checksum"
	"fcrawl/internal/download"
	"fcrawl/internal/pool"
	"fcrawl/internal/report"
	"fcrawl/internal/size"
	"fcrawl/internal/stream"
	"fcrawl/internal/uri"
)

// state identifies which of the three FSM nodes currently owns the
// byte cursor.
type state int

const (
	stateDocument state = iota
	stateTag
	stateAttribute
)

// tagScratch holds the per-tag fields the original source keeps on its
// html_tag node.
type tagScratch struct {
	name         string
	close        bool
	skipped      bool
	nameDone     bool
	comment      bool
	commentBegin bool
	commentEnd   bool
	lastCh       byte
	seekAttr     string
	hasSeekAttr  bool
}

func (t *tagScratch) ascend() {
	*t = tagScratch{}
}

// attrScratch holds the per-attribute fields the original source keeps
// on its html_element_attribute node.
type attrScratch struct {
	name     []byte
	value    []byte
	quote    byte
	hasValue bool
	line     int
	column   int
}

func (a *attrScratch) ascend() {
	a.name = a.name[:0]
	a.value = a.value[:0]
	a.quote = 0
	a.hasValue = false
	a.line = 0
	a.column = 0
}

// Crawler is both an Observer fed by the seed Downloader and the owner
// of the job pool that runs the sub-downloads it discovers. It must be
// fed from a single goroutine: the FSM fields are not synchronized.
type Crawler struct {
	hostHint string
	logger   *slog.Logger
	pool     *pool.Pool
	table    table

	// Cursor
	line      int
	column    int
	readCount uint64

	state state
	tag   tagScratch
	attr  attrScratch

	// onDiscover, when set, is invoked synchronously for every freshly
	// discovered URI before its sub-download job is submitted. It
	// exists purely so tests can observe discovery tuples without
	// racing the job pool; production code leaves it nil.
	onDiscover func(element, attribute, value string, line, column int)
}

// New returns a Crawler that treats hostHint as the authority to fill
// into any discovered URI that parses with an empty host, and whose
// sub-downloads run on a freshly constructed job pool of tMin initial
// workers with a ceiling of tMax (0 means unbounded).
func New(hostHint string, tMin, tMax int, logger *slog.Logger) *Crawler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Crawler{
		hostHint: hostHint,
		logger:   logger,
		pool:     pool.New(tMin, tMax),
		table:    make(table),
		line:     1,
		column:   0,
	}
}

// Pool returns the job pool backing this crawler's sub-downloads, so
// the orchestrator can drain it with Shutdown once the seed download
// completes.
func (c *Crawler) Pool() *pool.Pool {
	return c.pool
}

// Observe feeds a chunk of the seed page's bytes through the FSM. It
// may be called any number of times with contiguous chunks; state is
// preserved across calls so a tag or attribute value may straddle a
// chunk boundary.
func (c *Crawler) Observe(data []byte) {
	for i := 0; i < len(data); i++ {
		c.step(data[i])
	}
}

// step advances the cursor past ch and dispatches it to whichever node
// currently owns the byte, exactly mirroring the per-byte transition
// table in the crawler's design.
func (c *Crawler) step(ch byte) {
	c.updatePosition(ch)

	switch c.state {
	case stateDocument:
		c.stepDocument(ch)
	case stateTag:
		c.stepTag(ch)
	case stateAttribute:
		c.stepAttribute(ch)
	default:
		panic(fmt.Sprintf("crawler: unreachable FSM state %d", c.state))
	}
}

func (c *Crawler) updatePosition(ch byte) {
	if ch == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	c.readCount++
}

// stepDocument implements the Document state: everything is ignored
// except '<', which descends into Tag.
func (c *Crawler) stepDocument(ch byte) {
	if ch == '<' {
		c.state = stateTag
	}
}

// stepTag dispatches to the tag's two sub-modes.
func (c *Crawler) stepTag(ch byte) {
	if c.tag.skipped {
		c.stepTagSkipped(ch)
	} else {
		c.stepTagAttrs(ch)
	}
}

// stepTagAttrs accumulates the element name and watches for the point
// where attribute parsing should begin.
func (c *Crawler) stepTagAttrs(ch byte) {
	defer func() { c.tag.lastCh = ch }()

	switch ch {
	case '>':
		c.tag.ascend()
		c.state = stateDocument

	case '!':
		c.tag.commentBegin = c.tag.name == ""
		c.tag.skipped = true

	case '?':
		c.tag.skipped = true

	case '/':
		c.tag.close = true

	case ' ', '\r', '\n', '\t':
		if c.tag.name != "" {
			c.tag.nameDone = true
			attr, ok := lookupAttribute(c.tag.name)
			if !ok {
				c.tag.skipped = true
				return
			}
			c.tag.seekAttr = attr
			c.tag.hasSeekAttr = true
		}

	case '-':
		if !c.tag.nameDone && c.tag.name != "" {
			c.tag.name += string(toLowerByte(ch))
		} else {
			c.tag.skipped = true
		}

	default:
		if isTokenChar(ch) {
			if !c.tag.nameDone {
				c.tag.name += string(toLowerByte(ch))
			} else {
				c.descendToAttribute(ch)
			}
		} else {
			c.tag.skipped = true
		}
	}
}

// stepTagSkipped scans for the tag's closing '>', honoring HTML
// comment quoting via the comment/commentBegin/commentEnd flags.
func (c *Crawler) stepTagSkipped(ch byte) {
	lastCh := c.tag.lastCh
	defer func() { c.tag.lastCh = ch }()

	switch ch {
	case '>':
		if !c.tag.comment || c.tag.commentEnd {
			c.tag.ascend()
			c.state = stateDocument
		}

	case '-':
		if c.tag.commentBegin {
			if lastCh == '-' {
				c.tag.comment = true
			}
		} else if c.tag.comment {
			if lastCh == '-' {
				c.tag.commentEnd = true
			}
		}

	default:
		c.tag.commentBegin = false
	}
}

// descendToAttribute begins parsing a new attribute. Note that ch
// becomes the attribute name's first character verbatim, not
// lowercased -- only subsequent characters are folded to lowercase.
func (c *Crawler) descendToAttribute(ch byte) {
	c.attr.name = append(c.attr.name[:0], ch)
	c.state = stateAttribute
}

// stepAttribute implements the Attribute state, both its not-yet-quoted
// and quoted sub-modes.
func (c *Crawler) stepAttribute(ch byte) {
	switch ch {
	case '/':
		if c.attr.quote == 0 {
			c.tag.close = true
			c.ascendAttributeAndTag()
		} else {
			c.attr.value = append(c.attr.value, ch)
		}

	case '>':
		if c.attr.quote != 0 {
			c.attr.value = append(c.attr.value, ch)
		} else {
			c.processAttribute()
			c.ascendAttributeAndTag()
		}

	case '=':
		if c.attr.quote != 0 {
			c.attr.value = append(c.attr.value, ch)
		} else {
			c.attr.hasValue = true
		}

	case '\'', '"':
		switch {
		case c.attr.quote == 0:
			c.attr.quote = ch
			c.attr.line = c.line
			c.attr.column = c.column
		case c.attr.quote == ch:
			c.processAttribute()
			c.attr.ascend()
			c.state = stateTag
		default:
			c.attr.value = append(c.attr.value, ch)
		}

	case ' ', '\r', '\n', '\t':
		if c.attr.quote != 0 {
			c.attr.value = append(c.attr.value, ch)
		}

	default:
		if c.attr.quote != 0 {
			c.attr.value = append(c.attr.value, ch)
		} else {
			c.attr.name = append(c.attr.name, toLowerByte(ch))
		}
	}
}

// ascendAttributeAndTag returns straight from Attribute to Document,
// resetting both the attribute and the tag scratch. Used by the two
// attribute-state shortcuts ('/' self-close and unquoted '>') that
// leave the tag entirely rather than returning to scan more attributes.
func (c *Crawler) ascendAttributeAndTag() {
	c.attr.ascend()
	c.tag.ascend()
	c.state = stateDocument
}

// processAttribute compares the accumulated attribute name against the
// one registered for the current element and, on a match, hands the
// value off to processURI.
func (c *Crawler) processAttribute() {
	if !c.tag.hasSeekAttr {
		panic("crawler: attribute processed with no element registered")
	}

	if string(c.attr.name) == c.tag.seekAttr {
		c.processURI(c.tag.name, string(c.attr.name), string(c.attr.value), c.attr.line, c.attr.column)
	}
}

// processURI discards in-page anchors, inserts a fresh Record for a
// newly seen URI, and enqueues its sub-download onto the pool.
func (c *Crawler) processURI(element, attribute, value string, line, column int) {
	c.logger.Debug("discovered URI",
		"element", element, "attribute", attribute, "uri", value,
		"line", line, "column", column)

	if value != "" && value[0] == '#' {
		return
	}

	inserted, rec := c.table.insertIfAbsent(value)
	if !inserted {
		return
	}

	if c.onDiscover != nil {
		c.onDiscover(element, attribute, value, line, column)
	}

	c.pool.Submit(func() {
		c.downloadSub(value, line, column, rec)
	})
}

// downloadSub is the sub-download job body: it derives the position
// token filename, resolves a relative URI against the crawler's host
// hint, and runs a Downloader feeding a checksum+size composite
// observer straight into rec.
func (c *Crawler) downloadSub(value string, line, column int, rec *Record) {
	filename := fmt.Sprintf("./%08d_%08d", line, column)
	rec.Filename = filename

	target := uri.Parse(value)
	if target.Host == "" {
		target.Host = c.hostHint
	}

	observer := stream.NewComposite(
		checksum.New(&rec.Checksum),
		size.New(&rec.Size),
	)

	dl := download.New(target, filename, c.logger)
	rec.Success = dl.RunWithObserver(observer)
}

// Report writes one line per discovered URI, in no particular order,
// followed by a minimal- and maximal-size summary line when at least
// one URI was discovered. It must only be called after c.Pool().Shutdown()
// has returned, establishing happens-before with every job's writes.
func (c *Crawler) Report(w io.Writer) error {
	lines := make([]report.Line, 0, len(c.table))
	for u, rec := range c.table {
		lines = append(lines, report.Line{
			URI:      u,
			Filename: rec.Filename,
			Size:     rec.Size,
			Checksum: rec.Checksum,
		})
	}
	return report.Write(w, lines)
}
