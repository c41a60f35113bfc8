package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/service"
)

// Server HTTP-поверхность приложения: публичные экраны, родительский
// и учительский кабинеты, админка
type Server struct {
	sessions    *service.SessionService
	students    *service.StudentService
	teachers    *service.TeacherService
	schedule    *service.ScheduleService
	attendance  *service.AttendanceService
	grades      *service.GradeService
	homework    *service.HomeworkService
	broadcasts  *service.BroadcastService
	gallery     *service.GalleryService
	shop        *service.ShopService
	bus         *service.BusService
	content     *service.ContentService
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewServer(
	sessions *service.SessionService,
	students *service.StudentService,
	teachers *service.TeacherService,
	schedule *service.ScheduleService,
	attendance *service.AttendanceService,
	grades *service.GradeService,
	homework *service.HomeworkService,
	broadcasts *service.BroadcastService,
	gallery *service.GalleryService,
	shop *service.ShopService,
	bus *service.BusService,
	content *service.ContentService,
	logger *zap.Logger,
) *Server {
	return &Server{
		sessions:   sessions,
		students:   students,
		teachers:   teachers,
		schedule:   schedule,
		attendance: attendance,
		grades:     grades,
		homework:   homework,
		broadcasts: broadcasts,
		gallery:    gallery,
		shop:       shop,
		bus:        bus,
		content:    content,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/session", s.handleSession)
	r.Post("/auth/parent/login", s.handleParentLogin)
	r.Post("/auth/teacher/login", s.handleTeacherLogin)
	r.Post("/auth/admin/login", s.handleAdminLogin)
	r.Post("/auth/logout", s.handleLogout)
	r.Post("/admin/preview/student", s.handlePreviewStudent)
	r.Post("/admin/preview/teacher", s.handlePreviewTeacher)
	r.Post("/admin/preview/exit", s.handleExitPreview)

	r.Get("/students", s.handleListStudents)
	r.Post("/students", s.handleCreateStudent)
	r.Get("/students/{id}", s.handleGetStudent)
	r.Put("/students/{id}", s.handleUpdateStudent)
	r.Delete("/students/{id}", s.handleDeleteStudent)
	r.Post("/students/{id}/payment", s.handleRecordPayment)
	r.Post("/students/{id}/wallet", s.handleTopUpWallet)
	r.Put("/students/{id}/photo", s.handleUpdatePhoto)

	r.Get("/teachers", s.handleListTeachers)
	r.Post("/teachers", s.handleCreateTeacher)
	r.Put("/teachers/{id}", s.handleUpdateTeacher)
	r.Delete("/teachers/{id}", s.handleDeleteTeacher)

	r.Get("/schedule", s.handleFullSchedule)
	r.Get("/schedule/class/{class}", s.handleClassTimetable)
	r.Get("/schedule/class/{class}/image", s.handleTimetableImage)
	r.Get("/schedule/teacher/{name}", s.handleTeacherAssignments)
	r.Put("/schedule/class/{class}/slot", s.handleSetSlot)
	r.Delete("/schedule/class/{class}/slot", s.handleRemoveSlot)

	r.Get("/attendance/{date}", s.handleAttendanceForDate)
	r.Put("/attendance/{date}", s.handleSaveAttendance)
	r.Post("/attendance/{date}/mark", s.handleMarkAttendance)
	r.Post("/attendance/{date}/mark-all", s.handleMarkAllAttendance)
	r.Get("/attendance/{date}/stats", s.handleAttendanceStats)

	r.Get("/subjects", s.handleListSubjects)
	r.Post("/subjects", s.handleAddSubject)
	r.Delete("/subjects/{id}", s.handleRemoveSubject)
	r.Get("/grades/{term}", s.handleGradebook)
	r.Get("/grades/{term}/student/{id}", s.handleStudentGrades)
	r.Put("/grades/{term}/score", s.handleSetScore)

	r.Get("/homework", s.handleListHomework)
	r.Post("/homework", s.handlePostHomework)
	r.Delete("/homework/{id}", s.handleDeleteHomework)

	r.Get("/catalog/uniforms", s.handleUniformCatalog)
	r.Get("/catalog/lunch", s.handleLunchCatalog)
	r.Get("/cart", s.handleGetCart)
	r.Post("/cart", s.handleAddToCart)
	r.Delete("/cart", s.handleClearCart)
	r.Delete("/cart/{index}", s.handleRemoveFromCart)
	r.Post("/checkout", s.handleCheckout)
	r.Get("/orders", s.handleListOrders)
	r.Post("/orders/{id}/complete", s.handleCompleteOrder)

	r.Get("/gallery", s.handleListGallery)
	r.Post("/gallery", s.handleAddPhoto)
	r.Delete("/gallery/{id}", s.handleDeletePhoto)

	r.Get("/announcements", s.handleListAnnouncements)
	r.Get("/announcements/student/{id}", s.handleStudentFeed)
	r.Post("/announcements", s.handlePublishAnnouncement)
	r.Delete("/announcements/{id}", s.handleDeleteAnnouncement)

	r.Get("/bus", s.handleBusRoute)
	r.Put("/bus", s.handleSaveBusRoute)
	r.Get("/bus/timeline/morning", s.handleMorningTimeline)
	r.Get("/bus/timeline/evening", s.handleEveningTimeline)
	r.Post("/bus/location", s.handleBusLocation)

	r.Get("/home", s.handleHomeContent)
	r.Put("/home", s.handleSaveHomeContent)
	r.Get("/language", s.handleGetLanguage)
	r.Put("/language", s.handleSetLanguage)
	r.Post("/admin/reset", s.handleReset)

	return r
}

// requestLogger пишет строку на каждый запрос
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}
