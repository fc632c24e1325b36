package landing

import (
	"fmt"
	"net/url"

	"github.com/nfrund/cloudx/internal/toggle"
)

// Fragment endpoints. The landing module mounts its handlers on these paths.
const (
	// FragmentPrefix starts every fragment path. Static renders never
	// reference it.
	FragmentPrefix    = "/fragments/"
	MenuFragmentPath  = "/fragments/menu"
	FAQFragmentPath   = "/fragments/faq"
	BrandFragmentPath = "/fragments/brand"
)

// Menu events.
const (
	EventToggle = "toggle"
	EventClose  = "close"
)

// Region ids replaced by fragment responses.
const (
	NavMenuID = "nav-menu"
	FAQListID = "faq-list"
)

func menuURL(state toggle.MenuState, event string) string {
	q := url.Values{}
	q.Set("state", state.String())
	q.Set("event", event)
	return MenuFragmentPath + "?" + q.Encode()
}

func faqURL(acc toggle.Accordion, i int) string {
	q := url.Values{}
	q.Set("open", acc.Param())
	q.Set("toggle", fmt.Sprint(i))
	return FAQFragmentPath + "?" + q.Encode()
}

func brandURL(slot MarkSlot) string {
	return BrandFragmentPath + "/" + slot.String()
}
