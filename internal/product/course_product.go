package product

import (
	"context"

	"github.com/stemsi/course-backend/internal/model"
)

const (
	// TypeCourse is the product type of a course.
	TypeCourse = "course"

	// CourseShowTemplate renders a course line item on the order page.
	CourseShowTemplate = "order/show/course-item.html.twig"
)

// CourseGetter looks courses up by ID.
type CourseGetter interface {
	GetCourse(ctx context.Context, id int) (*model.Course, error)
}

// CourseSetGetter looks course sets up by ID.
type CourseSetGetter interface {
	GetCourseSet(ctx context.Context, id int) (*model.CourseSet, error)
}

// CourseProduct is the order line item of a single course.
type CourseProduct struct {
	Params
	Title        string           `json:"title"`
	Price        float64          `json:"price"`
	CourseSet    *model.CourseSet `json:"course_set"`
	ShowTemplate string           `json:"show_template"`

	courses    CourseGetter
	courseSets CourseSetGetter
}

// NewCourseProduct creates an uninitialised course product.
func NewCourseProduct(courses CourseGetter, courseSets CourseSetGetter) *CourseProduct {
	return &CourseProduct{courses: courses, courseSets: courseSets}
}

// Type implements Product.
func (p *CourseProduct) Type() string {
	return TypeCourse
}

// Init loads the course named by params.TargetID and its course set.
// Lookup errors are returned as the services report them.
func (p *CourseProduct) Init(ctx context.Context, params Params) error {
	course, err := p.courses.GetCourse(ctx, params.TargetID)
	if err != nil {
		return err
	}

	courseSet, err := p.courseSets.GetCourseSet(ctx, course.CourseSetID)
	if err != nil {
		return err
	}

	if params.TargetType == "" {
		params.TargetType = TypeCourse
	}

	p.Params = params
	p.Title = course.Title
	p.Price = course.Price
	p.CourseSet = courseSet
	p.ShowTemplate = CourseShowTemplate
	return nil
}

// Validate implements Product. Courses have no extra purchase rules yet.
func (p *CourseProduct) Validate() error {
	return nil
}
