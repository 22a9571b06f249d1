// Package ui keeps page regions in sync with the session state.
//
// The page marks two regions: the sign-in buttons shown to anonymous users
// and the user menu shown once logged in. Either may be absent from a page.
package ui

import "sync"

const (
	AuthButtonsID = "auth-buttons"
	UserMenuID    = "user-menu"
	HiddenClass   = "hidden"
)

type (
	// Element is a styleable page region
	Element interface {
		AddClass(name string)
		RemoveClass(name string)
	}

	// Document looks up page regions by id
	Document interface {
		ElementByID(id string) (Element, bool)
	}

	// Authenticator reports the session state
	Authenticator interface {
		IsAuthenticated() bool
	}
)

// UpdateAuthUI hides the sign-in buttons and shows the user menu for an
// authenticated session, and the inverse otherwise. Missing regions are skipped.
func UpdateAuthUI(doc Document, session Authenticator) {
	authButtons, hasButtons := doc.ElementByID(AuthButtonsID)
	userMenu, hasMenu := doc.ElementByID(UserMenuID)
	if session.IsAuthenticated() {
		if hasButtons {
			authButtons.AddClass(HiddenClass)
		}
		if hasMenu {
			userMenu.RemoveClass(HiddenClass)
		}
		return
	}
	if hasButtons {
		authButtons.RemoveClass(HiddenClass)
	}
	if hasMenu {
		userMenu.AddClass(HiddenClass)
	}
}

// Page runs startup work once the document content is ready.
type Page struct {
	doc     Document
	session Authenticator
	once    sync.Once
}

// Ready syncs the auth UI; only the first call has an effect.
func (p *Page) Ready() {
	p.once.Do(func() {
		UpdateAuthUI(p.doc, p.session)
	})
}

func NewPage(doc Document, session Authenticator) *Page {
	return &Page{doc: doc, session: session}
}
