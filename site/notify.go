package site

import (
	"time"

	"github.com/google/uuid"

	"github.com/liangshaojie/portfolio/i18n"
)

// Severity styles a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification timings: shown shortly after insertion so the CSS transition
// applies, hidden after the display window, removed after the exit animation.
const (
	NotificationShowDelay = 100 * time.Millisecond
	NotificationLifetime  = 5 * time.Second
	NotificationExitDelay = 300 * time.Millisecond
)

// Notification is a transient message appended to the page body.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
}

// ShowNotification appends a notification to the page and schedules its
// fade in, fade out and removal. Notifications stack.
func (w *Website) ShowNotification(message string, severity Severity) Notification {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.showNotification(message, severity)
}

func (w *Website) notify(key i18n.Key, severity Severity) Notification {
	msg, _ := i18n.Lookup(w.lang, key)
	return w.showNotification(msg, severity)
}

func (w *Website) showNotification(message string, severity Severity) Notification {
	n := Notification{ID: uuid.NewString(), Message: message, Severity: severity}

	body := w.doc.Body()
	if body == nil {
		return n
	}
	el := w.doc.CreateElement("div")
	el.SetAttr("class", "notification "+string(severity))
	el.SetAttr("data-notification-id", n.ID)
	el.SetAttr("role", "status")
	el.SetText(message)
	body.Append(el)

	w.after(NotificationShowDelay, func() {
		el.AddClass("show")
	})
	w.after(NotificationLifetime, func() {
		el.RemoveClass("show")
		w.after(NotificationExitDelay, el.Remove)
	})
	return n
}
