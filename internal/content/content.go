// Package content holds the portfolio copy rendered by the site and the hero preview.
package content

// Roles cycle through the hero's typewriter line.
var Roles = []string{
	"Frontend Developer",
	"JavaScript Enthusiast",
	"React Developer",
	"Web Developer",
	"TypeScript Enthusiast",
	"UI Engineer",
}

const (
	OwnerName    = "Hafizur Rahman"
	ContactEmail = "tonmoy.a009@gmail.com"
	GithubURL    = "https://github.com/tonmoystark"
	LinkedInURL  = "https://www.linkedin.com/in/md-hafizur-rahman-69b723258/"
	ResumePath   = "/static/resume.pdf"
)

// Sections are the page anchors listed in the site header.
var Sections = []string{"Home", "About", "Projects", "Contact"}

var (
	HeroIntro = `I design and build modern, responsive and performance-focused web
	applications using React, Javascript and TypeScript.`

	AboutMe = `I'm a dedicated Frontend Developer who enjoys turning ideas into clean,
	interactive interfaces. I care about accessible markup, smooth motion and code that
	stays easy to change long after the first release.`

	Skills = []string{
		"React",
		"JavaScript",
		"TypeScript",
		"Tailwind CSS",
		"Framer Motion",
		"REST API",
		"Git",
		"GitHub",
	}
)

type Project struct {
	Title       string
	Description string
	Stack       []string
	LiveURL     string
	SourceURL   string
}

var Projects = []Project{
	{
		Title:       "Task Flow Management App",
		Description: "A task management system with role-based dashboards where admins assign tasks and employees track their task status using Context API and LocalStorage.",
		Stack:       []string{"React", "TailwindCSS", "Context API"},
		LiveURL:     "https://task-flow-employee-task-manager.vercel.app/",
		SourceURL:   "https://github.com/tonmoystark/task-flow-employee-task-manager",
	},
	{
		Title:       "Mood Tracking App",
		Description: "A simple and calming interface that helps users log daily moods and sleep patterns, encouraging self-reflection.",
		Stack:       []string{"HTML", "TailwindCSS", "JavaScript"},
		LiveURL:     "https://mood-tracking-ui.vercel.app/",
		SourceURL:   "https://github.com/tonmoystark/mood-tracking-ui",
	},
	{
		Title:       "Bookmark Manager App",
		Description: "An intuitive bookmark manager that allows users to organize, search, and categorize saved links.",
		Stack:       []string{"HTML", "TailwindCSS", "JavaScript"},
		LiveURL:     "https://bookmark-manager-weld.vercel.app/",
		SourceURL:   "https://github.com/tonmoystark/bookmark-manager",
	},
	{
		Title:       "Frontend Developer Portfolio",
		Description: "A responsive personal portfolio website designed to showcase projects and experience.",
		Stack:       []string{"HTML", "CSS", "JavaScript"},
		LiveURL:     "https://tonmoystark.github.io/FrontEnd-Developer-Tonmoy/",
		SourceURL:   "https://github.com/tonmoystark/FrontEnd-Developer-Tonmoy",
	},
	{
		Title:       "Quiz App",
		Description: "An interactive quiz application with instant feedback and score display.",
		Stack:       []string{"HTML", "CSS", "JavaScript"},
		LiveURL:     "https://tonmoystark.github.io/quiz-app/",
		SourceURL:   "https://github.com/tonmoystark/quiz-app",
	},
}
