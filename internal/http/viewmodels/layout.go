// Package viewmodels holds the plain data structures the views render.
package viewmodels

type LayoutData struct {
	Title     string
	CSRFToken string
	Notice    *NoticeViewData
}

// NoticeViewData is a one-shot user-visible notice surfaced after a redirect.
type NoticeViewData struct {
	Category string // info, success, warning, error
	Message  string
}
