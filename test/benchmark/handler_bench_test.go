package benchmark

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http/handlers"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http/views"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/app"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/domain"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo)
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithChecks measures readiness with registered health checks.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	registry := ports.NewHealthRegistry()

	_ = registry.Register(&staticChecker{name: "collection-api"})
	_ = registry.Register(&staticChecker{name: "translation-service"})

	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	handler := handlers.NewHealthHandler(registry, buildInfo)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkBuildInfoHandler measures the performance of the build info endpoint.
func BenchmarkBuildInfoHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/build", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.BuildInfoHandler(c)
	}
}

// BenchmarkSearchPage measures a full search page render against an
// in-memory collection, isolating template and aggregation overhead
// from network latency.
func BenchmarkSearchPage(b *testing.B) {
	router := gin.New()

	tmpl, err := views.Templates()
	if err != nil {
		b.Fatal(err)
	}
	router.SetHTMLTemplate(tmpl)

	service := app.NewGalleryService(app.GalleryServiceConfig{
		Collection: newMemoryCollection(40),
		Translator: identityTranslator{},
	})
	handlers.NewGalleryHandler(service).RegisterGalleryRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/search?q=portrait", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// staticChecker is a minimal health checker for benchmarking.
type staticChecker struct {
	name string
}

func (s *staticChecker) Name() string {
	return s.name
}

func (s *staticChecker) Check(_ context.Context) error {
	return nil
}

// memoryCollection serves a fixed set of objects without any I/O.
type memoryCollection struct {
	ids     []int
	objects map[int]*domain.ArtObject
}

func newMemoryCollection(size int) *memoryCollection {
	mc := &memoryCollection{objects: make(map[int]*domain.ArtObject, size)}

	for i := 1; i <= size; i++ {
		mc.ids = append(mc.ids, i)
		mc.objects[i] = &domain.ArtObject{
			ID:           i,
			Title:        "Portrait " + strconv.Itoa(i),
			PrimaryImage: "https://images.example.org/" + strconv.Itoa(i) + ".jpg",
		}
	}

	return mc
}

func (m *memoryCollection) ListDepartments(_ context.Context) ([]domain.Department, error) {
	return []domain.Department{{ID: 1, DisplayName: "European Paintings"}}, nil
}

func (m *memoryCollection) SearchObjects(_ context.Context, _ domain.SearchFilters) ([]int, int, error) {
	return m.ids, len(m.ids), nil
}

func (m *memoryCollection) GetObject(_ context.Context, id int) (*domain.ArtObject, error) {
	obj, ok := m.objects[id]
	if !ok {
		return nil, domain.NewNotFoundError("object", strconv.Itoa(id))
	}
	return obj, nil
}

// identityTranslator passes text through unchanged.
type identityTranslator struct{}

func (identityTranslator) Translate(_ context.Context, text string) string { return text }
