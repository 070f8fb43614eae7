package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"gestao_compras/internal/usecase/interfaces"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keepaliveInterval = 30 * time.Second

var errUnknownTable = pkg.NewDomainErrorSimple("UNKNOWN_TABLE", "Unknown table", http.StatusBadRequest)

// EventsHandler streams table change notifications as Server-Sent Events.
// Clients re-read the named collection on every "change" event.
type EventsHandler struct {
	notifier  interfaces.IChangeNotifier
	keepalive time.Duration
}

func NewEventsHandler(notifier interfaces.IChangeNotifier) *EventsHandler {
	return &EventsHandler{notifier: notifier, keepalive: keepaliveInterval}
}

type changeEvent struct {
	Table string `json:"table"`
}

// Stream godoc
// @Summary Subscribe to table change events
// @Tags events
// @Produce text/event-stream
// @Param tables query string false "Comma separated tables, all when empty"
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	tables := splitList(c.Query("tables"))
	if len(tables) == 0 {
		tables = interfaces.RequiredTables
	}
	for _, t := range tables {
		if !slices.Contains(interfaces.RequiredTables, t) {
			respondError(c, errUnknownTable)
			return
		}
	}

	ctx := c.Request.Context()
	clientID := uuid.NewString()
	changes := make(chan string, 16)

	var cancels []func()
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()
	for _, t := range tables {
		cancel, err := h.notifier.Subscribe(ctx, t, func(table string) {
			select {
			case changes <- table:
			default:
			}
		})
		if err != nil {
			respondError(c, mapBackendError(err))
			return
		}
		cancels = append(cancels, cancel)
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	zap.L().Info("[events][handler] client connected", zap.String("client_id", clientID), zap.Strings("tables", tables))
	defer zap.L().Info("[events][handler] client disconnected", zap.String("client_id", clientID))

	writeEvent(c, "connected", map[string]string{"client_id": clientID})

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case table := <-changes:
			writeEvent(c, "change", changeEvent{Table: table})
		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}

func writeEvent(c *gin.Context, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, payload)
	c.Writer.Flush()
}
