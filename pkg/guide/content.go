package guide

// Page-level copy shared by every panel.
const (
	HubName    = "IT & Digital Mexico City Hub"
	GuideTitle = "Interns Program — Handover Guide"
	Footer     = "Built for handover continuity — keep this open as a living reference. Update sections as the program evolves."
)

// Stat is a headline number in the hero.
type Stat struct {
	Label string
	Value string
}

// Hero is the banner shown above every panel.
type Hero struct {
	Title       string
	Intro       string
	Pills       []Pill
	LastUpdated string
	Note        string
	Stats       []Stat
}

// PageHero returns the banner content.
func PageHero() Hero {
	return Hero{
		Title: "Interns Program — Playbook for HR Owner",
		Intro: "A practical, visual guide to understand what the program is, what you must manage, how often, and where we can improve.",
		Pills: []Pill{
			{Text: "Program governance", Tone: ToneInfo},
			{Text: "Mexico + Brazil"},
		},
		LastUpdated: "Dec 2025",
		Note:        "Use as internal reference",
		Stats: []Stat{
			{Label: "Total interns", Value: "38"},
			{Label: "Mexico / Brazil", Value: "31 / 7"},
			{Label: "Gender balance", Value: "55% women"},
		},
	}
}

// UsageTips are shown in the sidebar under "How to use this guide".
func UsageTips() []string {
	return []string{
		"Use it as a quick reference before monthly follow-ups.",
		"Copy snippets directly into emails / chat messages.",
		"Keep it open during onboarding + renewal decisions.",
	}
}

// RenderPanel returns the content panel for id. Every id in the section list
// maps to exactly one panel; anything else gets the overview panel.
func RenderPanel(id SectionID) Panel {
	switch id {
	case Role:
		return rolePanel()
	case Cadence:
		return cadencePanel()
	case Governance:
		return governancePanel()
	case Success:
		return successPanel()
	case Risks:
		return risksPanel()
	case Opportunities:
		return opportunitiesPanel()
	case Toolkit:
		return toolkitPanel()
	default:
		return overviewPanel()
	}
}

// Panels returns every panel in navigation order.
func Panels() []Panel {
	out := make([]Panel, 0, len(sections))
	for _, sec := range sections {
		out = append(out, RenderPanel(sec.ID))
	}
	return out
}

func overviewPanel() Panel {
	return Panel{
		ID:       Overview,
		Title:    "What is the Interns Program?",
		Subtitle: "A talent pipeline and development ecosystem — not a transactional internship.",
		Blocks: []Block{
			Pills{Items: []Pill{{Text: "Core purpose", Tone: ToneInfo}}},
			Paragraph{Text: "Develop future IT & Digital talent through real exposure.", Strong: true},
			Paragraph{Text: "Hiring can happen, but it is not guaranteed. The program reduces hiring risk by observing talent in real work environments."},
			List{
				Title: "What it IS",
				Items: []string{
					"Long-term early-career pipeline",
					"Real projects + deliverables",
					"Structured learning (70–20–10)",
					"HR governance + manager ownership",
				},
			},
			List{
				Title: "What it is NOT",
				Tone:  ToneWarn,
				Items: []string{
					"A short-term support role",
					"Only operational tasks",
					"A hiring promise",
					"HR doing the manager’s job",
				},
			},
			Tiles{
				Title: "Learning model (70–20–10)",
				Items: []Tile{
					{Kicker: "70%", Title: "Hands-on experience", Text: "Real work, projects, exposure to leadership."},
					{Kicker: "20%", Title: "Networking + community", Text: "Mentorship, Coffee IT, peer learning."},
					{Kicker: "10%", Title: "Formal learning", Text: "iLearn + soft skills learning path."},
				},
			},
		},
	}
}

func rolePanel() Panel {
	return Panel{
		ID:       Role,
		Title:    "Your role as HR Program Owner",
		Subtitle: "You coordinate governance and quality — you do not execute the intern’s day-to-day work.",
		Blocks: []Block{
			List{
				Title: "You ARE",
				Items: []string{
					"Program orchestrator (cadence + structure)",
					"Quality controller (learning + exposure)",
					"Bridge HR ↔ People Managers",
					"Guardian of intern experience",
				},
			},
			List{
				Title: "You are NOT",
				Tone:  ToneWarn,
				Items: []string{
					"The intern’s task manager",
					"A replacement for People Managers",
					"The person doing technical coaching",
					"Someone who ‘runs the project’ alone",
				},
			},
			Tiles{
				Items: []Tile{
					{Title: "Your north star", Text: "Ensure every intern has meaningful development and business exposure, with clear follow-up."},
					{Title: "What you control", Text: "Cadence, governance, visibility, escalation, and the quality of development tracking."},
					{Title: "When you intervene", Text: "If People Manager engagement is low or the internship becomes purely operational."},
				},
			},
		},
	}
}

func cadencePanel() Panel {
	return Panel{
		ID:       Cadence,
		Title:    "Cadence & Activities",
		Subtitle: "What you manage, how often, and the expected output.",
		Blocks: []Block{
			Table{
				Columns: []string{"Activity", "Frequency", "Output / What “good” looks like"},
				Rows: [][]string{
					{"Onboarding governance (first 45 days)", "Per intern (first month + checkpoints)", "Role clarity, tool access, development plan defined, real project assigned"},
					{"Monthly follow-up with People Managers", "Monthly", "1:1 completed, development visible, risks identified early"},
					{"Learning model check (70–20–10)", "Monthly light review", "Balance between projects, community, and training is healthy"},
					{"Mid-cycle review", "Once per 6-month cycle", "Clear progress + next development actions agreed"},
					{"Renewal / closure support", "End of cycle", "Decision grounded in 4 dimensions: performance, skills, mindset, impact"},
					{"Visibility moments (intern presentation)", "Annual", "Interns showcase who they are, what they build, and innovation"},
				},
			},
			Callout{
				Title: "Quick escalation rule",
				Tone:  ToneInfo,
				Text:  "If a People Manager is consistently missing follow-ups or using the intern for operational tasks only, HR intervenes and reassesses internship viability.",
			},
			Callout{
				Title: "Minimum standard (non-negotiables)",
				Tone:  ToneGood,
				Text:  "Monthly 1:1s + development tracking updated + intern assigned to value-generating work.",
			},
		},
	}
}

func governancePanel() Panel {
	return Panel{
		ID:       Governance,
		Title:    "Governance model",
		Subtitle: "Shared ownership: People Managers own formation; HR owns structure and follow-up.",
		Blocks: []Block{
			List{
				Title: "People Manager owns",
				Items: []string{
					"Day-to-day coaching and formation",
					"Integrating interns into real projects",
					"Developing them from zero when needed",
					"Maximizing value of the internship resource",
				},
			},
			List{
				Title: "HR owns",
				Items: []string{
					"Structure and governance",
					"Cadence: ensure monthly 1:1 happens",
					"Monitor development + engagement",
					"Intervene if manager engagement is low",
				},
			},
			Callout{
				Title: "Why HR governance matters",
				Text:  "The program must remain a pipeline (development + exposure). If it becomes only operational support, the value and credibility of the program declines.",
			},
		},
	}
}

func successPanel() Panel {
	return Panel{
		ID:       Success,
		Title:    "Success criteria",
		Subtitle: "Success = clear before/after development + readiness. Hiring is a possible outcome, not a promise.",
		Blocks: []Block{
			Pills{Items: []Pill{{Text: "Definition of success", Tone: ToneGood}}},
			Paragraph{Text: "An intern is successful when there is visible progress in technical skills, soft skills, mindset, and overall readiness for the job market."},
			Pills{Items: []Pill{{Text: "Ideal outcome", Tone: ToneInfo}}},
			Paragraph{Text: "Hiring (inside Nestlé or externally) is the strongest signal of employability."},
			List{
				Title: "Evaluate decisions on 4 dimensions",
				Items: []string{
					"Performance",
					"Skills development",
					"Attitude & mindset",
					"Business impact",
				},
			},
			List{
				Title: "Evidence you should look for",
				Items: []string{
					"More autonomy over time",
					"Higher-quality outputs",
					"Ownership + collaboration",
					"Visible learning + confidence",
				},
			},
		},
	}
}

func risksPanel() Panel {
	return Panel{
		ID:       Risks,
		Title:    "Risk signals (what to watch)",
		Subtitle: "Early detection protects intern experience and program credibility.",
		Blocks: []Block{
			Tiles{
				Tone: ToneWarn,
				Items: []Tile{
					{Title: "Low People Manager engagement", Bullets: []string{"1:1s not happening", "Feedback is inconsistent", "No coaching / no exposure"}},
					{Title: "Intern used only as operational support", Bullets: []string{"Repetitive tasks only", "No learning path", "No real project ownership"}},
					{Title: "Missing visibility on development", Bullets: []string{"No Development Tracking / PDP updates", "No evidence of progress", "Hard to decide renewal"}},
					{Title: "Engagement drop", Bullets: []string{"Intern disengaged", "Low participation in community", "Lack of belonging"}},
				},
			},
			Callout{
				Title: "When to escalate",
				Tone:  ToneWarn,
				Text:  "Escalate when the internship is not development-focused, or when the People Manager consistently misses the governance cadence.",
			},
			Callout{
				Title: "HR intervention approach",
				Tone:  ToneInfo,
				Text:  "Clarify expectations with the manager, reset the development plan, and reassess whether the internship resource is genuinely needed.",
			},
		},
	}
}

func opportunitiesPanel() Panel {
	return Panel{
		ID:       Opportunities,
		Title:    "Opportunities to strengthen the program",
		Subtitle: "Biggest gap today: impact measurement and structured evaluation.",
		Blocks: []Block{
			Tiles{
				Tone: ToneInfo,
				Items: []Tile{
					{
						Title:   "Light evaluation framework",
						Text:    "Standardize how we assess performance and readiness across interns and managers.",
						Bullets: []string{"Simple rubric", "Consistent renewal decisions", "Clear expectations"},
					},
					{
						Title:   "Consolidated metrics",
						Text:    "Create a minimal set of KPIs to track program outcomes and credibility.",
						Bullets: []string{"Retention", "Conversion", "Engagement", "Skills readiness"},
					},
					{
						Title:   "Impact storytelling",
						Text:    "Turn results into a narrative for leadership and global IT visibility.",
						Bullets: []string{"Before/after", "Success cases", "Talent pipeline value"},
					},
				},
			},
			Banner{
				Title: "Recommended first win (low effort / high impact)",
				Text: "Build a simple monthly tracker: 1:1 done (Y/N), development plan updated (Y/N), project exposure (short note), risk flag (green/yellow/red). " +
					"This alone increases governance quality and enables basic reporting.",
			},
		},
	}
}

func toolkitPanel() Panel {
	return Panel{
		ID:       Toolkit,
		Title:    "Toolkit (copy/paste-ready)",
		Subtitle: "Short templates you can reuse for onboarding, monthly checks, and escalations.",
		Blocks: []Block{
			Template{
				Title: "Monthly check-in message to People Manager",
				Text:  "Hi [Name], quick reminder for our Interns Program governance: could you please confirm (1) the monthly 1:1 with [Intern] happened, (2) key development progress this month, and (3) any risk flags or support needed from HR? Thank you.",
			},
			Template{
				Title: "Onboarding expectations (first 45 days)",
				Text:  "For the first 45 days, we align on: role expectations, objectives, tools access, learning path (Development Tracking / PDP), and assignment to a real project with measurable deliverables. HR will follow up to ensure clarity and consistency.",
			},
			Template{
				Title: "Escalation note (low manager engagement)",
				Tone:  ToneWarn,
				Text:  "Hi [Name], I’m noticing governance gaps in the Interns Program cadence (missed 1:1s / limited coaching). The program is designed as a development pipeline, so we need to reset expectations and confirm the internship resource is being used for value-generating development. Can we align this week?",
			},
			Template{
				Title: "Renewal decision prompt",
				Text:  "For renewal decisions, please provide a short view across 4 dimensions: performance, skills development, attitude/mindset, and business impact. Include 1–2 concrete examples of progress and recommended next steps.",
			},
			Checklist{
				Title: "Monthly HR checklist",
				Items: []string{
					"1:1s completed (all interns)",
					"Development Tracking / PDP updated",
					"Risk flags captured",
					"Any manager follow-up needed",
				},
			},
			Checklist{
				Title: "Onboarding checklist",
				Items: []string{
					"Role clarity & expectations",
					"Tool/system access",
					"Learning path assigned",
					"Real project defined",
				},
			},
			Checklist{
				Title: "End-of-cycle checklist",
				Items: []string{
					"4-dimension evaluation",
					"Decision documented",
					"Next step agreed",
					"Visibility / learnings captured",
				},
			},
		},
	}
}
