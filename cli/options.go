package cli

// Options are the global flags and commands of the sitekit tool
type Options struct {
	Config  string `short:"c" long:"config" description:"yaml config URL"`
	BaseURL string `short:"u" long:"url" description:"application base URL"`
	Store   string `short:"s" long:"store" description:"session store URL"`
	Browser bool   `short:"b" long:"browser" description:"open navigation targets in the system browser"`
	Verbose bool   `short:"v" long:"verbose" description:"debug logging"`
	NoColor bool   `long:"no-color" description:"disable coloured output"`

	Login   LoginCommand   `command:"login" description:"log in and store the session tokens"`
	Logout  LogoutCommand  `command:"logout" description:"clear the session and go to the home page"`
	Status  StatusCommand  `command:"status" description:"report whether a session is stored"`
	Whoami  WhoamiCommand  `command:"whoami" description:"show the claims of the stored access token"`
	Token   TokenCommand   `command:"token" description:"show, set or clear the access token"`
	Request RequestCommand `command:"request" description:"call an API endpoint with the session token"`
	Score   ScoreCommand   `command:"score" description:"show the colour category of scores"`
	Date    DateCommand    `command:"date" description:"format API timestamps"`
}

type LoginCommand struct {
	Email    string `short:"e" long:"email" description:"account email"`
	Password string `short:"p" long:"password" env:"SITEKIT_PASSWORD" description:"account password"`
	Secret   string `long:"secret" description:"scy credential resource URL (blowfish encrypted)"`
	app      *App
}

type LogoutCommand struct {
	app *App
}

type StatusCommand struct {
	app *App
}

type WhoamiCommand struct {
	app *App
}

type TokenCommand struct {
	Set   string `long:"set" description:"store this access token"`
	Clear bool   `long:"clear" description:"remove access and refresh tokens"`
	app   *App
}

type RequestCommand struct {
	Method  string   `short:"X" long:"method" default:"GET" description:"HTTP method"`
	Data    string   `short:"d" long:"data" description:"request body"`
	Headers []string `short:"H" long:"header" description:"extra header, 'Key: Value'"`
	Args    struct {
		Endpoint string `positional-arg-name:"endpoint" required:"true"`
	} `positional-args:"yes"`
	app *App
}

type ScoreCommand struct {
	Args struct {
		Scores []float64 `positional-arg-name:"score" required:"1"`
	} `positional-args:"yes"`
	app *App
}

type DateCommand struct {
	Args struct {
		Values []string `positional-arg-name:"value" required:"1"`
	} `positional-args:"yes"`
	app *App
}
