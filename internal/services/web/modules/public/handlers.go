package public

import (
	"log"
	"net/http"

	apperrors "github.com/yiroma/budgetmanagement/internal/services/web/platform/errors"
	"github.com/yiroma/budgetmanagement/internal/services/web/platform/httpx"
	"github.com/yiroma/budgetmanagement/internal/services/web/platform/pagerender"
	"github.com/yiroma/budgetmanagement/internal/services/web/platform/weberror"
	"github.com/yiroma/budgetmanagement/internal/services/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	err := pagerender.WritePage(w, r, pagerender.Page{
		Fragment: templates.HomePage(h.service.greeting()),
	})
	if err != nil {
		weberror.WriteRenderError(w, http.StatusInternalServerError, err)
	}
}

func (h handlers) handleHello(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteText(w, http.StatusOK, h.service.greeting()); err != nil {
		log.Printf("write hello: %v", err)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, h.service.healthBody())
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, apperrors.E(apperrors.KindNotFound, "page not found: "+r.URL.Path))
}
