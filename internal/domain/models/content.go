package models

// SiteContent — единый агрегат всего контента сайта.
// Every slice keeps insertion order: position in the slice is the display
// order on the page, and identity inside a list is the index itself.
// The document is always read and written as a whole.
type SiteContent struct {
	Hero                Hero              `json:"hero"`
	HeroStats           []Stat            `json:"heroStats"`
	Advantages          []Advantage       `json:"advantages"`
	AdvantagesStats     []Stat            `json:"advantagesStats"`
	ProductApplications []ProductApp      `json:"productApplications"`
	ProductIntro        Intro             `json:"productIntro"`
	Products            []Product         `json:"products"`
	ApplicationIntro    Intro             `json:"applicationIntro"`
	ApplicationCards    []ApplicationCard `json:"applicationCards"`
	QualityStandards    []QualityStandard `json:"qualityStandards"`
	CompanyStrength     CompanyStrength   `json:"companyStrength"`
	About               About             `json:"about"`
}

type Hero struct {
	Badge        string         `json:"badge"`
	Title        HeroTitle      `json:"title"`
	Descriptions []string       `json:"descriptions"`
	Features     []string       `json:"features"`
	Gallery      []GalleryImage `json:"gallery"`
}

type HeroTitle struct {
	Prefix    string `json:"prefix"`
	Highlight string `json:"highlight"`
	Suffix    string `json:"suffix"`
}

type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Advantage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type ProductApp struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
}

type Intro struct {
	Badge       string `json:"badge"`
	Title       string `json:"title"`
	Highlight   string `json:"highlight"`
	Description string `json:"description"`
}

type Product struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Features     []string `json:"features"`
	Specs        []Stat   `json:"specs"`
	Applications []string `json:"applications"`
}

type ApplicationCard struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

type QualityStandard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CompanyStrength struct {
	Strengths      []Strength      `json:"strengths"`
	Certifications []Certification `json:"certifications"`
	FactoryImages  []FactoryImage  `json:"factoryImages"`
}

type Strength struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type Certification struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type FactoryImage struct {
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// About — вложенный документ страницы "О компании".
type About struct {
	Hero         Intro        `json:"hero"`
	CompanyIntro CompanyIntro `json:"companyIntro"`
	History      History      `json:"history"`
	Workshop     Workshop     `json:"workshop"`
	Equipment    Equipment    `json:"equipment"`
	Culture      Culture      `json:"culture"`
}

type CompanyIntro struct {
	Title      string     `json:"title"`
	Paragraphs []string   `json:"paragraphs"`
	Stats      []Stat     `json:"stats"`
	Image      IntroImage `json:"image"`
}

type IntroImage struct {
	Src      string `json:"src"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type History struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Timeline    []TimelineEntry `json:"timeline"`
}

type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Workshop struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Gallery     []WorkshopItem `json:"gallery"`
}

type WorkshopItem struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Equipment struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Items       []EquipmentItem `json:"items"`
}

type EquipmentItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Culture struct {
	Title      string        `json:"title"`
	Cards      []CultureCard `json:"cards"`
	CtaText    string        `json:"ctaText"`
	ButtonText string        `json:"buttonText"`
	ButtonLink string        `json:"buttonLink"`
}

type CultureCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
