package main

// Static site data. Loaded once at process start, never mutated at runtime.
// Catalog order matters: listings preserve it and title linkification uses it
// as the tie-break when one title is a substring of another.

type ProjectLinks struct {
	Live string `json:"live,omitempty"`
	Repo string `json:"repo,omitempty"`
}

type Project struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Type        string       `json:"type"` // work | faculty | personal
	Role        string       `json:"role"`
	Stack       []string     `json:"stack"`
	Tags        []string     `json:"tags,omitempty"`
	Links       ProjectLinks `json:"links"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Cover       string       `json:"cover,omitempty"`
	Featured    bool         `json:"featured,omitempty"`
	Description string       `json:"description"`
	Year        int          `json:"year"`
}

type About struct {
	Name      string   `json:"name"`
	Nickname  string   `json:"nickname"`
	Avatar    string   `json:"avatar"`
	Tagline   string   `json:"tagline"`
	Bio       string   `json:"bio"`
	ShortBio  string   `json:"short_bio"`
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Email     string   `json:"email"`
	GitHub    string   `json:"github,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	Website   string   `json:"website,omitempty"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests,omitempty"`
}

func featuredProjects() []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func projectBySlug(slug string) (Project, bool) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

func projectsByType(t string) []Project {
	var out []Project
	for _, p := range projects {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

var about = About{
	Name:     "Adrian-Petru Bleoju",
	Nickname: "Adrian",
	Avatar:   "/static/avatar.jpg",
	Tagline:  "Frontend Developer • Passionate about AI & Creative Tech",
	Bio: `I'm a Computer Science graduate from UAIC Iași with experience in
frontend development (React, Next.js, Tailwind) and academic projects
spanning web, mobile (Flutter), and low-level networking (Python, C/C++).
I enjoy building clean UIs, experimenting with new technologies,
and connecting creativity with code.`,
	ShortBio: "Full Stack Developer passionate about creating digital experiences using modern technologies and clean, efficient code.",
	Country:  "Romania",
	City:     "Miercurea Ciuc",
	Email:    "bleojua98@gmail.com",
	GitHub:   "https://github.com/badrianp",
	LinkedIn: "https://www.linkedin.com/in/bleojua",

	Skills: []string{
		"HTML", "CSS", "JavaScript", "TypeScript",
		"React", "Next.js", "Angular",
		"Tailwind CSS", "Node.js", "MySQL",
		"Flutter", "Firebase",
	},

	Interests: []string{
		"UI/UX design", "AI in frontend", "Automotive tech", "Photography", "Music",
	},
}

var projects = []Project{
	// Work
	{
		Slug:        "corporate-ui-dashboard-pro",
		Title:       "Corporate UI Dashboard PRO",
		Type:        "work",
		Role:        "Frontend: layout, components, styles",
		Stack:       []string{"HTML", "Bootstrap5", "JavaScript"},
		Tags:        []string{"dashboard", "design-system", "pro"},
		Links:       ProjectLinks{Live: "https://www.creative-tim.com/product/corporate-ui-dashboard-pro"},
		Cover:       "/static/covers/corporate-pro.png",
		Description: "Premium dashboard template built with Bootstrap5, focusing on reusable layouts and components.",
		Year:        2023,
	},
	{
		Slug:        "argon-dashboard-pro-tailwind",
		Title:       "Argon Dashboard PRO (Tailwind)",
		Type:        "work",
		Role:        "Frontend: PRO pages and UI refinements",
		Stack:       []string{"HTML", "Tailwind", "JavaScript"},
		Tags:        []string{"dashboard", "pro"},
		Links:       ProjectLinks{Live: "https://www.creative-tim.com/product/argon-dashboard-pro-tailwind"},
		Cover:       "/static/covers/argon-pro.png",
		Featured:    true,
		Description: "Professional dashboard template with refined Argon UI components and extra pages.",
		Year:        2022,
	},
	{
		Slug:        "soft-ui-dashboard-pro-tailwind",
		Title:       "Soft UI Dashboard PRO (Tailwind)",
		Type:        "work",
		Role:        "Frontend: advanced components and structure",
		Stack:       []string{"HTML", "Tailwind", "JavaScript"},
		Tags:        []string{"dashboard", "pro"},
		Links:       ProjectLinks{Live: "https://www.creative-tim.com/product/soft-ui-dashboard-pro-tailwind"},
		Cover:       "/static/covers/soft-pro.png",
		Description: "Extended version of Soft UI Dashboard with advanced features, charts, and forms.",
		Year:        2022,
	},
	{
		Slug:        "new-life-therapy",
		Title:       "New Life Therapy — Psychology Practice",
		Type:        "work",
		Role:        "Presentation website built with Angular",
		Stack:       []string{"Angular", "TypeScript", "HTML", "CSS"},
		Tags:        []string{"website", "angular", "presentation"},
		Links:       ProjectLinks{Live: "https://new-life-therapy.vercel.app/", Repo: "https://github.com/badrianp/new-life-therapy"},
		Cover:       "/static/covers/new-life.png",
		Description: "Single-page presentation website for a psychology practice, built with Angular.",
		Year:        2023,
	},
	{
		Slug:        "arthera-wallet",
		Title:       "Arthera Wallet",
		Type:        "work",
		Role:        "Crypto wallet UI built with Angular",
		Stack:       []string{"Angular", "TypeScript", "HTML", "CSS"},
		Tags:        []string{"wallet", "crypto", "angular"},
		Links:       ProjectLinks{Live: "https://arthera-wallet.vercel.app/", Repo: "https://github.com/badrianp/arthera-wallet"},
		Cover:       "/static/covers/arthera.png",
		Description: "Frontend for a crypto wallet, implementing UI flows and interactions with Angular.",
		Year:        2022,
	},
	{
		Slug:        "loopple-builder-components",
		Title:       "Loopple – UI Components for Builder",
		Type:        "work",
		Role:        "Delivered standalone HTML + Tailwind + JS components (not the builder itself)",
		Stack:       []string{"HTML", "Tailwind", "JavaScript"},
		Tags:        []string{"low-code", "components"},
		Links:       ProjectLinks{Live: "https://www.loopple.com/low-code-builder/theme/motion-landing-library"},
		Cover:       "https://raw.githubusercontent.com/Loopple/loopple-public-assets/main/tailwind/motion-landing-tailwind.png",
		Description: "Collection of UI components integrated into Loopple Builder for low-code dashboards.",
		Year:        2023,
	},
	{
		Slug:        "corporate-ui-dashboard",
		Title:       "Corporate UI Dashboard",
		Type:        "work",
		Role:        "Ownership frontend: layout, components, styles",
		Stack:       []string{"HTML", "Bootstrap5", "JavaScript"},
		Tags:        []string{"dashboard", "design-system"},
		Links:       ProjectLinks{Live: "https://www.creative-tim.com/product/corporate-ui-dashboard"},
		Cover:       "/static/covers/corporate.png",
		Description: "Free dashboard template built with Bootstrap5, focusing on reusable layouts and components.",
		Year:        2023,
	},
	{
		Slug:        "argon-dashboard-tailwind",
		Title:       "Argon Dashboard 2 (Tailwind)",
		Type:        "work",
		Role:        "Frontend: pages and reusable UI components",
		Stack:       []string{"HTML", "Tailwind", "JavaScript"},
		Tags:        []string{"dashboard", "tailwind"},
		Links:       ProjectLinks{Live: "https://www.creative-tim.com/product/argon-dashboard-tailwind"},
		Cover:       "/static/covers/argon.png",
		Description: "Free Tailwind adaptation of Argon Dashboard, providing a modern UI kit for dashboards.",
		Year:        2022,
	},
	{
		Slug:        "soft-ui-dashboard-tailwind",
		Title:       "Soft UI Dashboard (Tailwind)",
		Type:        "work",
		Role:        "Frontend: pages and UI components",
		Stack:       []string{"HTML", "Tailwind", "JavaScript"},
		Tags:        []string{"dashboard", "tailwind"},
		Links:       ProjectLinks{Live: "https://www.creative-tim.com/product/soft-ui-dashboard-tailwind"},
		Cover:       "/static/covers/soft.png",
		Description: "Free Tailwind dashboard with elegant UI and essential components for quick project starts.",
		Year:        2022,
	},

	// Faculty
	{
		Slug:        "forking-food",
		Title:       "Forking Food",
		Type:        "faculty",
		Role:        "End-to-end mobile app: Flutter + Firebase",
		Stack:       []string{"Flutter", "Dart", "Firebase", "Firestore"},
		Tags:        []string{"mobile", "flutter", "firebase", "swipe"},
		Links:       ProjectLinks{Repo: "https://github.com/badrianp/forking-food"},
		Cover:       "/static/covers/forking.png",
		Featured:    true,
		Description: "Bachelor thesis project — mobile app for discovering recipes with swipe-based interactions.",
		Year:        2025,
	},
	{
		Slug:        "tic-tac-toe",
		Title:       "TicTacToe (Flutter)",
		Type:        "faculty",
		Role:        "Implemented UI, game flow, and AI logic (PvP & PvE)",
		Stack:       []string{"Flutter", "Dart"},
		Tags:        []string{"game", "ai", "mobile", "flutter"},
		Links:       ProjectLinks{Repo: "https://github.com/badrianp/tictactoe"},
		Cover:       "/static/covers/tictactoe.png",
		Description: "A Flutter-based TicTacToe game with Player vs Player and Player vs AI modes. The AI features three difficulty levels using heuristics for blocking, winning, and strategic placement.",
		Year:        2025,
	},
	{
		Slug:        "ret-resource-recommender",
		Title:       "ReT – Resource Recommender Tool",
		Type:        "faculty",
		Role:        "Web app: Node.js MVC + MySQL + frontend",
		Stack:       []string{"Node.js", "MySQL", "HTML", "CSS", "JavaScript"},
		Tags:        []string{"rss", "mvc", "node"},
		Links:       ProjectLinks{Repo: "https://github.com/badrianp/ReT"},
		Cover:       "/static/covers/ret.png",
		Featured:    true,
		Description: "Web app for aggregating RSS feeds with personalization and user authentication.",
		Year:        2025,
	},
	{
		Slug:        "backgammon-java-cli",
		Title:       "Backgammon (Java, CLI)",
		Type:        "faculty",
		Role:        "Console-based backgammon game with OOP structure",
		Stack:       []string{"Java"},
		Tags:        []string{"cli", "game", "oop"},
		Links:       ProjectLinks{Repo: "https://github.com/badrianp/Backgammon"},
		Cover:       "/static/covers/backgammon.png",
		Description: "Turn-based backgammon game implemented in Java using OOP principles.",
		Year:        2021,
	},
	{
		Slug:        "battleships-python-cli",
		Title:       "Battleships (Python, CLI)",
		Type:        "faculty",
		Role:        "Console-based battleships game in a single file",
		Stack:       []string{"Python"},
		Tags:        []string{"cli", "game"},
		Links:       ProjectLinks{Repo: "https://github.com/badrianp/Battleships"},
		Cover:       "/static/covers/battleships.png",
		Description: "Classic battleships game implemented in Python with grid-based gameplay.",
		Year:        2021,
	},
	{
		Slug:        "pheasant-client-server-c",
		Title:       "Pheasant Game (C, Client–Server)",
		Type:        "faculty",
		Role:        "Text-based multiplayer game using sockets",
		Stack:       []string{"C"},
		Tags:        []string{"cli", "sockets", "client-server"},
		Links:       ProjectLinks{Repo: "https://github.com/badrianp/PheasantGame"},
		Cover:       "/static/covers/pheasant.png",
		Description: "Networked game with client-server communication, built in C.",
		Year:        2021,
	},
}
