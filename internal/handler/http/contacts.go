package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/service"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/internal/utils"
	"github.com/MKhiriev/go-contact-manager/models"
)

// addContactPage renders the empty contact form.
func (h *Handler) addContactPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "add-contact", contactPage{
		basePage: h.newBasePage(r, "Add Contact"),
	})
}

// createContact handles the add-contact form submit.
func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	input, err := contactInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("error parsing contact form")
		http.Redirect(w, r, "/contacts/add?error=invalid_input", http.StatusSeeOther)
		return
	}

	created, err := h.services.ContactService.Create(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Redirect(w, r, "/contacts/add?error=invalid_input", http.StatusSeeOther)
			return
		}

		log.Err(err).Msg("unexpected error occurred during contact creation")
		http.Redirect(w, r, "/contacts/add?error=server_error", http.StatusSeeOther)
		return
	}

	log.Debug().Int64("id", created.ContactID).Msg("contact created")
	http.Redirect(w, r, withFlash("/", "success", created.FullName()+" added to contacts."), http.StatusSeeOther)
}

// viewContact renders the read-only contact page. Open to anonymous
// visitors; edit and delete affordances are gated in the template.
func (h *Handler) viewContact(w http.ResponseWriter, r *http.Request) {
	contact, ok := h.loadContact(w, r)
	if !ok {
		return
	}

	h.render(w, r, "view-contact", contactPage{
		basePage: h.newBasePage(r, contact.FullName()),
		Contact:  contact,
	})
}

// editContactPage renders the contact form pre-filled with the stored
// record.
func (h *Handler) editContactPage(w http.ResponseWriter, r *http.Request) {
	contact, ok := h.loadContact(w, r)
	if !ok {
		return
	}

	h.render(w, r, "edit-contact", contactPage{
		basePage: h.newBasePage(r, "Edit "+contact.FullName()),
		Contact:  contact,
	})
}

// updateContact handles the edit form submit.
func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := contactIDFromRequest(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, "Contact not found.")
		return
	}

	input, err := contactInputFromForm(r)
	if err != nil {
		log.Err(err).Msg("error parsing contact form")
		http.Redirect(w, r, contactEditPath(id)+"?error=invalid_input", http.StatusSeeOther)
		return
	}

	updated, err := h.services.ContactService.Update(ctx, id, input)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrContactNotFound):
			h.renderError(w, r, http.StatusNotFound, "Contact not found.")
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Redirect(w, r, contactEditPath(id)+"?error=invalid_input", http.StatusSeeOther)
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during contact update")
			http.Redirect(w, r, contactEditPath(id)+"?error=server_error", http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, withFlash("/contacts/"+strconv.FormatInt(id, 10), "success", updated.FullName()+" updated."), http.StatusSeeOther)
}

// deleteContact handles the AJAX delete and answers in JSON.
func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := contactIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, models.DeleteResponse{Success: false, Error: "contact not found"}, http.StatusNotFound)
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			utils.WriteJSON(w, models.DeleteResponse{Success: false, Error: "contact not found"}, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("unexpected error occurred during contact deletion")
		utils.WriteJSON(w, models.DeleteResponse{Success: false, Error: "could not delete contact"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Success: true, Message: "contact deleted"}, http.StatusOK)
}

// loadContact resolves the {id} route parameter and fetches the record,
// rendering the 404 page on any miss.
func (h *Handler) loadContact(w http.ResponseWriter, r *http.Request) (models.Contact, bool) {
	log := logger.FromRequest(r)

	id, err := contactIDFromRequest(r)
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, "Contact not found.")
		return models.Contact{}, false
	}

	contact, err := h.services.ContactService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			h.renderError(w, r, http.StatusNotFound, "Contact not found.")
			return models.Contact{}, false
		}

		log.Err(err).Int64("id", id).Msg("error loading contact")
		h.renderError(w, r, http.StatusInternalServerError, "Could not load contact.")
		return models.Contact{}, false
	}

	return contact, true
}

func contactIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func contactEditPath(id int64) string {
	return "/contacts/" + strconv.FormatInt(id, 10) + "/edit"
}

// contactInputFromForm binds the posted form fields to the boundary
// input struct. Checkboxes arrive as "on" when ticked and are absent
// otherwise.
func contactInputFromForm(r *http.Request) (models.ContactInput, error) {
	if err := r.ParseForm(); err != nil {
		return models.ContactInput{}, err
	}

	return models.ContactInput{
		FirstName:      r.PostFormValue("firstName"),
		LastName:       r.PostFormValue("lastName"),
		Address:        r.PostFormValue("address"),
		Phone:          r.PostFormValue("phone"),
		Email:          r.PostFormValue("email"),
		Title:          r.PostFormValue("title"),
		ContactByMail:  r.PostFormValue("contactByMail") != "",
		ContactByPhone: r.PostFormValue("contactByPhone") != "",
		ContactByEmail: r.PostFormValue("contactByEmail") != "",
	}, nil
}
