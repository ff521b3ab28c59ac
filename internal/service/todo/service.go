package todo

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Mutation operation labels for todo_mutations_total.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

type todoRepo interface {
	ListAll() []domain.Todo
	Get(id string) (domain.Todo, bool)
	Create(title string) (domain.Todo, error)
	Save(t domain.Todo) domain.Todo
	DeleteByID(id string) bool
}

// Service provides todo management operations.
type Service struct {
	todos     todoRepo
	log       *slog.Logger
	maxTitle  int
	mutations *prometheus.CounterVec
}

// NewService creates a new Todo service. The mutation counter is registered
// on reg; a nil reg leaves the counter unregistered.
func NewService(
	log *slog.Logger,
	todos todoRepo,
	cfg config.TodoConfig,
	reg prometheus.Registerer,
) *Service {
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "todo_mutations_total",
		Help: "Number of successful todo mutations by operation.",
	}, []string{"operation"})
	if reg != nil {
		reg.MustRegister(mutations)
	}

	return &Service{
		todos:     todos,
		log:       log.With("service", "todo"),
		maxTitle:  cfg.MaxTitleLength,
		mutations: mutations,
	}
}

// trimPtr trims whitespace. Returns nil if s is nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
