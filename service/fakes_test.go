package service

import (
	"context"
	"sort"

	"learnsphere/domain"
)

// fakeStudentRepo is an in-memory stand-in for the credential store.
// It mirrors the store-level guarantees the real repository relies on:
// unique emails, pair uniqueness on enrollments, and payable updated
// together with the relation.
type fakeStudentRepo struct {
	nextID      uint
	students    map[uint]*domain.Student
	byEmail     map[string]uint
	enrollments map[uint]map[uint]domain.Course
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		nextID:      1,
		students:    make(map[uint]*domain.Student),
		byEmail:     make(map[string]uint),
		enrollments: make(map[uint]map[uint]domain.Course),
	}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *domain.Student) error {
	if _, exists := r.byEmail[student.Email]; exists {
		return domain.E(domain.ErrConflict, "Email already exists")
	}
	student.ID = r.nextID
	r.nextID++
	cp := *student
	r.students[student.ID] = &cp
	r.byEmail[student.Email] = student.ID
	r.enrollments[student.ID] = make(map[uint]domain.Course)
	return nil
}

func (r *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.E(domain.ErrNotFound, "Record not found")
	}
	cp := *r.students[id]
	return &cp, nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id uint) (*domain.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, domain.E(domain.ErrNotFound, "Record not found")
	}
	cp := *student
	return &cp, nil
}

func (r *fakeStudentRepo) GetByIDWithCourses(ctx context.Context, id uint) (*domain.Student, error) {
	student, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, course := range r.enrollments[id] {
		student.Courses = append(student.Courses, course)
	}
	sort.Slice(student.Courses, func(i, j int) bool {
		return student.Courses[i].ID < student.Courses[j].ID
	})
	return student, nil
}

func (r *fakeStudentRepo) UpdatePassword(_ context.Context, id uint, hash string) error {
	student, ok := r.students[id]
	if !ok {
		return domain.E(domain.ErrNotFound, "Record not found")
	}
	student.Password = hash
	return nil
}

func (r *fakeStudentRepo) UpdateProfile(_ context.Context, id uint, fields domain.Student) error {
	student, ok := r.students[id]
	if !ok {
		return domain.E(domain.ErrNotFound, "Record not found")
	}
	student.Name = fields.Name
	return nil
}

func (r *fakeStudentRepo) AddCourse(_ context.Context, studentID uint, course *domain.Course) (float64, error) {
	student, ok := r.students[studentID]
	if !ok {
		return 0, domain.E(domain.ErrNotFound, "Record not found")
	}
	if _, enrolled := r.enrollments[studentID][course.ID]; enrolled {
		return 0, domain.E(domain.ErrConflict, "Course already added to your account")
	}
	r.enrollments[studentID][course.ID] = *course
	student.TotalPayable += course.Price
	return student.TotalPayable, nil
}

func (r *fakeStudentRepo) RemoveCourse(_ context.Context, studentID uint, course *domain.Course) error {
	student, ok := r.students[studentID]
	if !ok {
		return domain.E(domain.ErrNotFound, "Record not found")
	}
	if _, enrolled := r.enrollments[studentID][course.ID]; !enrolled {
		return domain.E(domain.ErrValidation, "Course not found in student selection")
	}
	delete(r.enrollments[studentID], course.ID)
	student.TotalPayable -= course.Price
	return nil
}

// fakeCourseRepo is an in-memory stand-in for the catalog store.
type fakeCourseRepo struct {
	nextID    uint
	courses   map[uint]domain.Course
	nextFbID  uint
	feedbacks []domain.Feedback
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		nextID:   1,
		courses:  make(map[uint]domain.Course),
		nextFbID: 1,
	}
}

func (r *fakeCourseRepo) addCourse(title string, price float64) domain.Course {
	course := domain.Course{ID: r.nextID, Title: title, Price: price}
	r.nextID++
	r.courses[course.ID] = course
	return course
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id uint) (*domain.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, domain.E(domain.ErrNotFound, "Record not found")
	}
	cp := course
	return &cp, nil
}

func (r *fakeCourseRepo) GetByIDWithFeedbacks(ctx context.Context, id uint) (*domain.Course, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, fb := range r.feedbacks {
		if fb.CourseID == id {
			course.Feedbacks = append(course.Feedbacks, fb)
		}
	}
	return course, nil
}

func (r *fakeCourseRepo) ListAll(_ context.Context) ([]domain.Course, error) {
	courses := make([]domain.Course, 0, len(r.courses))
	for _, course := range r.courses {
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *fakeCourseRepo) AppendFeedback(_ context.Context, feedback *domain.Feedback) error {
	feedback.ID = r.nextFbID
	r.nextFbID++
	r.feedbacks = append(r.feedbacks, *feedback)
	return nil
}
