package parameter

// Home page copy
const (
	TitleFirst   = "Nathaniel"
	TitleLast    = "Go"
	Subtitle     = "Come and explore!"
	AboutHeading = "About Me"
	AboutText    = "I'm a passionate photographer with over 8 years of experience capturing life's most " +
		"precious moments. From intimate weddings to dynamic lifestyle shoots, I believe every " +
		"frame tells a story worth preserving. My approach combines technical expertise with " +
		"genuine human connection, creating images that resonate long after the moment has passed."
	ProfileImageSource = "/profilepicture.jpg"
)

// SocialLink is one icon in the about section
type SocialLink struct {
	Name string
	Icon string
	Href string
}

// SocialLinks are the about section icons in display order
var SocialLinks = []SocialLink{
	{Name: "email", Icon: "/email.png", Href: "mailto:hello@netdngo@gmail.com"},
	{Name: "instagram", Icon: "/instagram.png", Href: "https://instagram.com/NetTheNut"},
	{Name: "linkedin", Icon: "/linkedin.png", Href: "https://linkedin.com/in/nathanieldeantogo"},
}

// Typography and box metrics (px)
const (
	TitleFontDesktop    = 96.0
	TitleFontMobile     = 48.0
	SubtitleFontDesktop = 24.0
	SubtitleFontMobile  = 18.0
	HeadingFont         = 36.0
	BodyFont            = 18.0
	BodyLineHeight      = 29.25

	// GlyphAspect approximates advance width as a fraction of font size
	GlyphAspect = 0.6

	TitleWordGap   = 16.0
	TitleMargin    = 24.0
	HeadingMargin  = 24.0
	TextMargin     = 32.0
	PagePadding    = 32.0
	ContentMaxW    = 896.0
	ColumnGap      = 48.0
	TwoColumnWidth = 1024.0

	SocialIconSize = 64.0
	SocialIconGap  = 24.0
	ProfileSize    = 320.0
)

// Scroll parallax
const (
	HeroScrollFactor  = 0.8
	HeroFadeFactor    = 1.5
	AboutFadeFactor   = 2.0
	ScrollSpringFreq  = 6.0
	ScrollSpringDamp  = 1.0
	ScrollSettleDelta = 0.01
)
