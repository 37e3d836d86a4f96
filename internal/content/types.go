package content

// Content is everything the portfolio page says, section by section.
type Content struct {
	Name       string       `yaml:"name"`
	Headline   string       `yaml:"headline"`
	Summary    string       `yaml:"summary"`
	About      About        `yaml:"about"`
	Skills     []SkillGroup `yaml:"skills"`
	Tools      []string     `yaml:"tools"`
	Projects   []Project    `yaml:"projects"`
	Experience []Position   `yaml:"experience"`
	Education  []Education  `yaml:"education"`
	Leadership []Card       `yaml:"leadership"`
	Interests  Interests    `yaml:"interests"`
	Gallery    []Caption    `yaml:"gallery"`
	Contact    Contact      `yaml:"contact"`
}

// About is the biography block.
type About struct {
	Body       string   `yaml:"body"` // markdown
	Highlights []string `yaml:"highlights"`
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Project is one project card. Image is an optional content key; without it
// the card takes the projects subset image at the same position.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"` // markdown
	Tech        []string `yaml:"tech"`
	Features    []string `yaml:"features"`
	Link        string   `yaml:"link"`
	Image       string   `yaml:"image"`
}

// Position is one entry of professional experience.
type Position struct {
	Role    string   `yaml:"role"`
	Company string   `yaml:"company"`
	Period  string   `yaml:"period"`
	Points  []string `yaml:"points"`
}

// Education is one degree or course.
type Education struct {
	Title       string   `yaml:"title"`
	Institution string   `yaml:"institution"`
	Period      string   `yaml:"period"`
	Details     []string `yaml:"details"`
}

// Card is a titled block with an optional image key, used by the
// leadership and interests sections.
type Card struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Interests holds illustrated interest cards plus a plain list.
type Interests struct {
	Cards []Card   `yaml:"cards"`
	Other []string `yaml:"other"`
}

// Caption labels one gallery image.
type Caption struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

// Contact lists the contact endpoints. They are opaque strings and are not
// validated.
type Contact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Medium   string `yaml:"medium"`
}

// MailtoURI returns the mailto: link for Email, or "" when unset.
func (c Contact) MailtoURI() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}

// TelURI returns the tel: link for Phone, or "" when unset.
func (c Contact) TelURI() string {
	if c.Phone == "" {
		return ""
	}
	return "tel:" + c.Phone
}
