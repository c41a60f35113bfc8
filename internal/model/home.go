package model

// HomeContent наполнение публичной главной страницы, редактируется админом
type HomeContent struct {
	About        HomeAbout         `json:"about"`
	Features     []HomeFeature     `json:"features"`
	Testimonials []HomeTestimonial `json:"testimonials"`
	Footer       HomeFooter        `json:"footer"`
}

type HomeAbout struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Image  string `json:"image"`
}

type HomeFeature struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type HomeTestimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Avatar string `json:"avatar"`
}

type HomeFooter struct {
	Desc    string     `json:"desc"`
	Address string     `json:"address"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Social  HomeSocial `json:"social"`
}

type HomeSocial struct {
	FB       string `json:"fb"`
	Insta    string `json:"insta"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
}
