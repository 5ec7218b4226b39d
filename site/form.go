package site

import (
	"context"

	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/contact"
	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
	"github.com/liangshaojie/portfolio/mail"
)

var (
	formControls   = dom.Or(dom.Tag("input"), dom.Tag("textarea"), dom.Tag("select"))
	requiredFields = dom.And(dom.Or(dom.Tag("input"), dom.Tag("textarea")), dom.HasAttr("required"))
	submitButton   = dom.And(dom.Tag("button"), dom.AttrEquals("type", "submit"))
)

// ValidateField checks one form control against its rule, updating its
// inline error, and reports whether it is valid.
func (w *Website) ValidateField(field *dom.Element) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validateField(field)
}

func (w *Website) validateField(field *dom.Element) bool {
	if field == nil {
		return true
	}
	state := contact.Check(field.Attr("name"), field.Value())

	errorEl := field.Parent().First(dom.HasClass("error-message"))
	errorEl.AddClass("hidden")
	field.RemoveClass("error")

	if state.Valid {
		return true
	}

	field.AddClass("error")
	msg, _ := i18n.Lookup(w.lang, state.ErrorKey)
	errorEl.SetText(msg)
	errorEl.RemoveClass("hidden")
	return false
}

// HandleFormSubmission validates the contact form and, when every field
// passes, sends it. Invalid forms are never sent and return contact.ErrInvalid.
// The submit button is disabled while sending and restored on every path.
// A page without a contact form does nothing.
func (w *Website) HandleFormSubmission(ctx context.Context) error {
	w.mu.Lock()

	form := w.doc.ByID("contactForm")
	if form == nil {
		w.mu.Unlock()
		return nil
	}

	valid := true
	for _, field := range form.Query(requiredFields) {
		if !w.validateField(field) {
			valid = false
		}
	}
	if !valid {
		w.notify("notify.form.invalid", SeverityError)
		w.mu.Unlock()
		return contact.ErrInvalid
	}

	submit := form.First(submitButton)
	submitText := submit.First(dom.HasClass("submit-text"))
	spinner := submit.First(dom.HasClass("loading-spinner"))

	msg := formMessage(form)
	submit.SetAttr("disabled", "")
	submitText.AddClass("hidden")
	spinner.RemoveClass("hidden")
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		submit.RemoveAttr("disabled")
		submitText.RemoveClass("hidden")
		spinner.AddClass("hidden")
	}()

	sendErr := w.sender.Send(ctx, msg)

	w.mu.Lock()
	defer w.mu.Unlock()
	if sendErr != nil {
		w.logger.Error("sending contact message", "error", sendErr)
		w.notify("notify.send.failure", SeverityError)
		return errors.Wrap(sendErr, "sending contact message")
	}

	w.notify("notify.send.success", SeveritySuccess)
	for _, control := range form.Query(formControls) {
		if control.Attr("type") == "submit" {
			continue
		}
		control.SetValue("")
	}
	return nil
}

func formMessage(form *dom.Element) mail.Message {
	value := func(name string) string {
		return form.First(dom.AttrEquals("name", name)).Value()
	}
	return mail.Message{
		Name:    value(contact.FieldName),
		Email:   value(contact.FieldEmail),
		Subject: value(contact.FieldSubject),
		Body:    value(contact.FieldMessage),
	}
}
