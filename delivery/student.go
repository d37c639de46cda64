package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"learnsphere/config"
	"learnsphere/domain"
	"learnsphere/dto"
	"learnsphere/utils"
)

type StudentHandler struct {
	profileUC    domain.ProfileUseCase
	enrollmentUC domain.EnrollmentUseCase
	feedbackUC   domain.FeedbackUseCase
}

func NewStudentHandler(
	r *gin.Engine,
	profileUC domain.ProfileUseCase,
	enrollmentUC domain.EnrollmentUseCase,
	feedbackUC domain.FeedbackUseCase,
	jwtManager *utils.JWTManager,
) {
	handler := &StudentHandler{
		profileUC:    profileUC,
		enrollmentUC: enrollmentUC,
		feedbackUC:   feedbackUC,
	}

	student := r.Group("/student")
	student.Use(config.AuthMiddleware(jwtManager))
	{
		student.GET("/profile", handler.GetProfile)
		student.PATCH("/profile", handler.EditProfile)
		student.GET("/courses", handler.ListCourses)
		student.GET("/courses/:id", handler.GetCourseDetails)
		student.POST("/courses/:id", handler.AddCourse)
		student.DELETE("/courses/:id", handler.RemoveCourse)
		student.POST("/courses/:id/feedback", handler.SubmitFeedback)
	}
}

// studentFromContext reads the identity placed by the auth middleware.
func studentFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get("studentID")
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

func courseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, domain.E(domain.ErrValidation, "Invalid course ID parameter")
	}
	return uint(id), nil
}

func (h *StudentHandler) GetProfile(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	studentID, ok := studentFromContext(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "GetProfile", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to get profile",
		})
		return
	}

	student, err := h.profileUC.GetProfile(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, &name, "GetProfile", "Failed to get profile", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "GetProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    student,
	})
}

func (h *StudentHandler) EditProfile(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	studentID, ok := studentFromContext(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "EditProfile", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to update profile",
		})
		return
	}

	var req dto.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := domain.E(domain.ErrValidation, utils.TranslateValidationError(err))
		respondError(c, &name, "EditProfile", "Failed to update profile", verr)
		return
	}

	fields := dto.MapEditProfileRequest(&req)
	if err := h.profileUC.EditProfile(c.Request.Context(), studentID, fields); err != nil {
		respondError(c, &name, "EditProfile", "Failed to update profile", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "EditProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
	})
}

func (h *StudentHandler) ListCourses(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	courses, err := h.enrollmentUC.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, &name, "ListCourses", "Failed to get courses", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "ListCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    courses,
	})
}

func (h *StudentHandler) GetCourseDetails(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	courseID, err := courseIDParam(c)
	if err != nil {
		respondError(c, &name, "GetCourseDetails", "Failed to get course details", err)
		return
	}

	details, err := h.enrollmentUC.GetCourseDetails(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, &name, "GetCourseDetails", "Failed to get course details", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "GetCourseDetails", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    details,
	})
}

func (h *StudentHandler) AddCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	studentID, ok := studentFromContext(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "AddCourse", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to add course",
		})
		return
	}

	courseID, err := courseIDParam(c)
	if err != nil {
		respondError(c, &name, "AddCourse", "Failed to add course", err)
		return
	}

	result, err := h.enrollmentUC.AddCourse(c.Request.Context(), studentID, courseID)
	if err != nil {
		respondError(c, &name, "AddCourse", "Failed to add course", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "AddCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       result.Message,
		"course":        result.Course,
		"total_payable": result.TotalPayable,
	})
}

func (h *StudentHandler) RemoveCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	studentID, ok := studentFromContext(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "RemoveCourse", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to remove course",
		})
		return
	}

	courseID, err := courseIDParam(c)
	if err != nil {
		respondError(c, &name, "RemoveCourse", "Failed to remove course", err)
		return
	}

	if err := h.enrollmentUC.RemoveCourse(c.Request.Context(), studentID, courseID); err != nil {
		respondError(c, &name, "RemoveCourse", "Failed to remove course", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "RemoveCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course removed successfully",
	})
}

func (h *StudentHandler) SubmitFeedback(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	studentID, ok := studentFromContext(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "SubmitFeedback", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to submit feedback",
		})
		return
	}

	courseID, err := courseIDParam(c)
	if err != nil {
		respondError(c, &name, "SubmitFeedback", "Failed to submit feedback", err)
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := domain.E(domain.ErrValidation, utils.TranslateValidationError(err))
		respondError(c, &name, "SubmitFeedback", "Failed to submit feedback", verr)
		return
	}

	if err := h.feedbackUC.SubmitFeedback(c.Request.Context(), studentID, courseID, req.Feedback); err != nil {
		respondError(c, &name, "SubmitFeedback", "Failed to submit feedback", err)
		return
	}

	utils.PrintLogInfo(&name, 201, "SubmitFeedback", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Feedback submitted successfully",
	})
}
