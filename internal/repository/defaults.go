package repository

import "github.com/viola-academy/academy_app/internal/model"

// Демо-данные, которые подставляются при пустом хранилище.
// Содержимое фиксировано: на него опираются экраны и логин-подсказки.

// DefaultStudents стартовый список учеников класса KG1 A
func DefaultStudents() []model.Student {
	return []model.Student{
		{ID: "202601", Name: "Kareem Masadeh", Grade: "KG1 A", Fee: 1000, Paid: 500, Credit: 500, Password: "123456"},
		{ID: "202602", Name: "Layla Ahmed", Grade: "KG1 A", Fee: 1000, Paid: 1000, Password: "123456"},
		{ID: "202603", Name: "Omar Yousef", Grade: "KG1 A", Fee: 1000, Paid: 0, Password: "123456"},
	}
}

// DefaultTeachers стартовый преподавательский состав
func DefaultTeachers() []model.Teacher {
	return []model.Teacher{
		{ID: "1", Name: "Ms. Huda", Subject: "KG1 Homeroom", Phone: "0790000000"},
		{ID: "2", Name: "Mr. John", Subject: "English", Phone: "0780000000"},
	}
}

// DefaultSubjects стартовые предметы журнала оценок
func DefaultSubjects() []model.Subject {
	return []model.Subject{
		{ID: "math", Name: "Math"},
		{ID: "science", Name: "Science"},
		{ID: "english", Name: "English"},
	}
}

// DefaultHomework стартовые задания
func DefaultHomework() []model.Homework {
	return []model.Homework{
		{ID: 1, Class: "KG1 A", Subject: "Math", Description: "Complete worksheet page 42", DueDate: "2026-01-20"},
		{ID: 2, Class: "KG1 A", Subject: "English", Description: "Read \"The Cat in the Hat\"", DueDate: "2026-01-21"},
	}
}

// DefaultGallery стартовые фотографии галереи
func DefaultGallery() []model.GalleryPhoto {
	return []model.GalleryPhoto{
		{ID: "1", URL: "https://placehold.co/600x400/8e44ad/white?text=School+Event", Caption: "Science Fair"},
		{ID: "2", URL: "https://placehold.co/600x400/2980b9/white?text=Class+Photo", Caption: "KG1 Class Photo"},
		{ID: "3", URL: "https://placehold.co/600x400/27ae60/white?text=Field+Trip", Caption: "Zoo Visit"},
	}
}

// DefaultBusRoute маршрут №4 (Ирбид)
func DefaultBusRoute() model.BusRoute {
	return model.BusRoute{
		Morning: []model.BusStop{
			{Time: "06:30", Loc: "Housing Bank Circle"},
			{Time: "07:00", Loc: "Nuwayjis Intersection"},
			{Time: "07:30", Loc: "Signal 2 (Bakery)"},
			{Time: "07:55", Loc: "Viola Academy"},
		},
		Evening: []model.BusStop{
			{Time: "14:00", Loc: "Viola Academy"},
			{Time: "14:30", Loc: "Signal 2 (Bakery)"},
			{Time: "15:00", Loc: "Nuwayjis Intersection"},
			{Time: "15:30", Loc: "Housing Bank Circle"},
		},
		CurrentStop: -1,
		DriverPhone: "+962790000000",
	}
}

// DefaultHomeContent наполнение главной страницы по умолчанию
func DefaultHomeContent() model.HomeContent {
	return model.HomeContent{
		About: model.HomeAbout{
			Title:  "About Us",
			Desc:   "Viola Academy is a premier kindergarten dedicated to fostering creativity, independence, and academic excellence in early childhood.",
			Quote:  "We combine Montessori independence with Mental Math rigor.",
			Author: "- Mr. Kareem, Principal",
			Image:  "https://ui-avatars.com/api/?name=Viola+Admin&size=512&background=random",
		},
		Features: []model.HomeFeature{
			{Icon: "brain", Title: "Mental Math", Desc: "Developing speed and accuracy in calculation."},
			{Icon: "hands-helping", Title: "Montessori", Desc: "Hands-on learning that fosters independence."},
			{Icon: "language", Title: "Bilingual", Desc: "Immersive English and Arabic curriculum."},
			{Icon: "palette", Title: "Creativity", Desc: "Arts, crafts, and music integration."},
		},
		Testimonials: []model.HomeTestimonial{
			{Name: "Mrs. Layla", Role: "Mother of Sarah", Quote: "Viola Academy has been a blessing. My daughter loves the Montessori activities!"},
			{Name: "Mr. Ahmad", Role: "Father of Omar", Quote: "The focus on mental math is impressive."},
		},
		Footer: model.HomeFooter{
			Desc:    "Empowering the next generation in Irbid.",
			Address: "University St., Irbid, Jordan",
			Phone:   "+962 79 000 0000",
			Email:   "info@viola.edu.jo",
			Social:  model.HomeSocial{FB: "#", Insta: "#", Twitter: "#", LinkedIn: "#"},
		},
	}
}
