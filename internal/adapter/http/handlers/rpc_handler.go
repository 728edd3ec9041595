package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	request "bengkel_pos/internal/adapter/http/dto/request"
	response "bengkel_pos/internal/adapter/http/dto/response"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	errUnknownAction = errors.New("unknown action")
	errRPCSecret     = errors.New("unauthorized")
)

// RPCHandler serves the single action endpoint used by the shop's browser
// client. Every reply is an envelope with HTTP 200; failures are reported in
// the envelope's error field.
type RPCHandler struct {
	catalog   usecase.ICatalogUseCase
	documents usecase.IDocumentUseCase
	auth      usecase.IAuthUseCase
	secret    string
}

// NewRPCHandler builds the handler. An empty secret disables the check.
func NewRPCHandler(catalog usecase.ICatalogUseCase, documents usecase.IDocumentUseCase, auth usecase.IAuthUseCase, secret string) *RPCHandler {
	return &RPCHandler{catalog: catalog, documents: documents, auth: auth, secret: secret}
}

// Handle godoc
// @Summary      Action envelope endpoint
// @Description  Actions: getPrices, savePrices, addPrice, deletePrice, saveEstimate, saveInvoice, getHistory, deleteEstimate, deleteInvoice, login.
// @Tags         rpc
// @Accept       json
// @Produce      json
// @Param        request body request.RPCRequest true "Envelope"
// @Success      200  {object}  response.RPCResponse
// @Router       /rpc [post]
func (h *RPCHandler) Handle(c *gin.Context) {
	var env request.RPCRequest
	// The browser client posts JSON as text/plain, so the body is always
	// decoded as JSON.
	if err := c.ShouldBindWith(&env, binding.JSON); err != nil {
		h.fail(c, errInvalidPayload)
		return
	}
	if h.secret != "" && subtle.ConstantTimeCompare([]byte(env.Secret), []byte(h.secret)) != 1 {
		h.fail(c, errRPCSecret)
		return
	}

	data, err := h.dispatch(c.Request.Context(), env)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RPCSuccess(data))
}

func (h *RPCHandler) dispatch(ctx context.Context, env request.RPCRequest) (any, error) {
	switch env.Action {
	case request.ActionGetPrices:
		catalog, err := h.catalog.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return response.FromCatalog(catalog), nil

	case request.ActionSavePrices:
		var body request.RPCSavePrices
		if err := env.Decode(&body); err != nil {
			return nil, errInvalidPayload
		}
		catalog := body.ToCatalog()
		if err := h.catalog.ReplaceAll(ctx, catalog); err != nil {
			return nil, err
		}
		return response.FromCatalog(catalog), nil

	case request.ActionAddPrice:
		var body request.RPCAddPrice
		if err := env.Decode(&body); err != nil {
			return nil, errInvalidPayload
		}
		entry, err := h.catalog.Upsert(ctx, body.Price.ToEntry())
		if err != nil {
			return nil, err
		}
		return response.FromCatalogEntry(entry), nil

	case request.ActionDeletePrice:
		var body request.RPCDeletePrice
		if err := env.Decode(&body); err != nil {
			return nil, errInvalidPayload
		}
		if err := h.catalog.Remove(ctx, body.PanelID); err != nil {
			return nil, err
		}
		return response.AckResponse{Success: true}, nil

	case request.ActionSaveEstimate:
		var body request.RPCSaveEstimate
		if err := env.Decode(&body); err != nil {
			return nil, errInvalidPayload
		}
		return h.save(ctx, body.Estimate.ToEntity(entities.DocumentKindEstimate))

	case request.ActionSaveInvoice:
		var body request.RPCSaveInvoice
		if err := env.Decode(&body); err != nil {
			return nil, errInvalidPayload
		}
		return h.save(ctx, body.Invoice.ToEntity(entities.DocumentKindInvoice))

	case request.ActionGetHistory:
		hist, err := h.documents.GetHistory(ctx)
		if err != nil {
			return nil, err
		}
		return response.FromHistory(hist), nil

	case request.ActionDeleteEstimate:
		return h.delete(ctx, env, entities.DocumentKindEstimate)

	case request.ActionDeleteInvoice:
		return h.delete(ctx, env, entities.DocumentKindInvoice)

	case request.ActionLogin:
		var body request.LoginRequest
		if err := env.Decode(&body); err != nil {
			return nil, errInvalidPayload
		}
		user, err := h.auth.Login(ctx, body.Username, body.Password)
		if err != nil {
			return nil, err
		}
		return response.FromUser(user), nil
	}
	return nil, errUnknownAction
}

func (h *RPCHandler) save(ctx context.Context, doc entities.Document) (any, error) {
	res, err := h.documents.Save(ctx, doc.Kind, doc)
	if err != nil {
		return nil, err
	}
	return response.FromSaveResult(res), nil
}

func (h *RPCHandler) delete(ctx context.Context, env request.RPCRequest, kind entities.DocumentKind) (any, error) {
	var body request.RPCDeleteDocument
	if err := env.Decode(&body); err != nil {
		return nil, errInvalidPayload
	}
	if err := h.documents.Delete(ctx, kind, int64(body.ID)); err != nil {
		return nil, err
	}
	return response.AckResponse{Success: true}, nil
}

func (h *RPCHandler) fail(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, errUnknownAction), errors.Is(err, errRPCSecret):
	default:
		appErr := mapDomainError(err)
		msg = appErr.Message
		if appErr.Err != nil {
			_ = c.Error(appErr.Err)
		}
	}
	c.JSON(http.StatusOK, response.RPCError(msg))
}
