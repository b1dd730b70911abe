package browsertest

import (
	"errors"
	"fmt"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"
)

type locator struct {
	page    *Page
	desc    string
	resolve func() []*Node
}

func (l *locator) Describe() string {
	return l.desc
}

func (l *locator) derive(desc string, resolve func() []*Node) *locator {
	return &locator{page: l.page, desc: l.desc + " >> " + desc, resolve: resolve}
}

func (l *locator) Locate(q entities.Query) interfaces.Locator {
	key := q.String()
	return l.derive(key, func() []*Node {
		var out []*Node
		for _, n := range l.resolve() {
			out = append(out, n.Children[key]...)
		}
		return out
	})
}

func (l *locator) Frame(selector string) interfaces.FrameLocator {
	return &frame{
		page: l.page,
		desc: l.desc + " >> " + selector,
		resolve: func() *Node {
			for _, n := range l.resolve() {
				if doc, ok := n.Frames[selector]; ok {
					return doc
				}
			}
			return nil
		},
	}
}

// single resolves exactly one node, mirroring the driver's strict mode
func (l *locator) single(action string) (*Node, error) {
	nodes := l.resolve()
	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("%s %s: %w: %w", action, l.desc, entities.ErrElementNotFound, ErrTimeout)
	case 1:
		return nodes[0], nil
	default:
		return nil, fmt.Errorf("%s %s: strict mode violation: resolved to %d elements", action, l.desc, len(nodes))
	}
}

func (l *locator) Click() error {
	n, err := l.single("click")
	if err != nil {
		return err
	}
	if n.Hidden {
		return fmt.Errorf("click %s: element is not visible: %w", l.desc, ErrTimeout)
	}
	l.page.record(entities.Action{Type: entities.ActionClick, Target: l.desc})
	if n.OnClick != nil {
		n.OnClick(l.page)
	}
	return nil
}

func (l *locator) Fill(value string) error {
	n, err := l.single("fill")
	if err != nil {
		return err
	}
	n.Value = value
	l.page.record(entities.Action{Type: entities.ActionFill, Target: l.desc, Value: value})
	return nil
}

func (l *locator) InnerText() (string, error) {
	n, err := l.single("read inner text of")
	if err != nil {
		return "", err
	}
	l.page.record(entities.Action{Type: entities.ActionRead, Target: l.desc})
	return n.Text, nil
}

func (l *locator) TextContent() (string, error) {
	return l.InnerText()
}

func (l *locator) IsVisible() (bool, error) {
	nodes := l.resolve()
	if len(nodes) > 1 {
		return false, fmt.Errorf("check visibility of %s: strict mode violation: resolved to %d elements", l.desc, len(nodes))
	}
	return len(nodes) == 1 && nodes[0].visible(), nil
}

func (l *locator) WaitFor(state interfaces.WaitState, timeout time.Duration) error {
	l.page.record(entities.Action{Type: entities.ActionWait, Target: l.desc, Value: string(state)})
	nodes := l.resolve()

	var ok bool
	switch state {
	case interfaces.StateAttached:
		ok = len(nodes) > 0
	case interfaces.StateDetached:
		ok = len(nodes) == 0
	case interfaces.StateHidden:
		ok = len(nodes) == 0 || !nodes[0].visible()
	default:
		ok = len(nodes) > 0 && nodes[0].visible()
	}
	if ok {
		return nil
	}
	if len(nodes) == 0 && state != interfaces.StateDetached && state != interfaces.StateHidden {
		return fmt.Errorf("wait for %s: %w: %w", l.desc, entities.ErrElementNotFound, ErrTimeout)
	}
	return fmt.Errorf("wait for %s to be %s after %s: %w", l.desc, state, timeout, ErrTimeout)
}

func (l *locator) Count() (int, error) {
	return len(l.resolve()), nil
}

func (l *locator) AllInnerTexts() ([]string, error) {
	nodes := l.resolve()
	texts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		texts = append(texts, n.Text)
	}
	return texts, nil
}

func (l *locator) Filter(hasText string) interfaces.Locator {
	return l.derive(fmt.Sprintf("has-text=%q", hasText), func() []*Node {
		var out []*Node
		for _, n := range l.resolve() {
			if containsFold(n.Text, hasText) {
				out = append(out, n)
			}
		}
		return out
	})
}

func (l *locator) Nth(i int) interfaces.Locator {
	return l.derive(fmt.Sprintf("nth=%d", i), func() []*Node {
		nodes := l.resolve()
		if i < 0 || i >= len(nodes) {
			return nil
		}
		return nodes[i : i+1]
	})
}

func (l *locator) First() interfaces.Locator {
	return l.Nth(0)
}

type frame struct {
	page    *Page
	desc    string
	resolve func() *Node
}

func (f *frame) Describe() string {
	return f.desc
}

func (f *frame) Locate(q entities.Query) interfaces.Locator {
	key := q.String()
	return &locator{
		page: f.page,
		desc: f.desc + " >> " + key,
		resolve: func() []*Node {
			doc := f.resolve()
			if doc == nil {
				return nil
			}
			return doc.Children[key]
		},
	}
}

func (f *frame) Frame(selector string) interfaces.FrameLocator {
	return &frame{
		page: f.page,
		desc: f.desc + " >> " + selector,
		resolve: func() *Node {
			doc := f.resolve()
			if doc == nil {
				return nil
			}
			return doc.Frames[selector]
		},
	}
}

// IsTimeout reports whether err came from a wait that ran out
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
