package service

import "github.com/willjrcristo/opportuneo-api/internal/domain"

// Catálogo de vagas servido pela busca do dashboard.
// TODO: trocar por integração com um job board real quando a conta da
// API de vagas for aprovada.
var catalogoVagas = []domain.Vaga{
	{
		ID:          "1",
		Titulo:      "Frontend Developer",
		Empresa:     "TechCorp Nigeria",
		Localizacao: "Lagos, Nigeria",
		Tipo:        "Full-time",
		Publicada:   "2 days ago",
		Descricao:   "We are looking for a skilled Frontend Developer to join our team. Experience with React, TypeScript, and modern web technologies required.",
		URL:         "https://example.com/jobs/1",
	},
	{
		ID:          "2",
		Titulo:      "Backend Engineer",
		Empresa:     "FinPay",
		Localizacao: "Lagos, Nigeria",
		Tipo:        "Full-time",
		Publicada:   "1 week ago",
		Descricao:   "Join our payments team building APIs in Go and Postgres. Experience with distributed systems is a plus.",
		URL:         "https://example.com/jobs/2",
	},
	{
		ID:          "3",
		Titulo:      "Digital Marketing Manager",
		Empresa:     "GrowthHub",
		Localizacao: "Remote",
		Tipo:        "Full-time",
		Publicada:   "3 days ago",
		Descricao:   "Lead our digital marketing strategy across paid and organic channels. SEO and content marketing experience required.",
		URL:         "https://example.com/jobs/3",
	},
	{
		ID:          "4",
		Titulo:      "Data Analyst",
		Empresa:     "InsightWorks",
		Localizacao: "Abuja, Nigeria",
		Tipo:        "Contract",
		Publicada:   "5 days ago",
		Descricao:   "Analyze product and marketing data, build dashboards and reports. SQL and Python required.",
		URL:         "https://example.com/jobs/4",
	},
	{
		ID:          "5",
		Titulo:      "Product Designer",
		Empresa:     "Studio Nine",
		Localizacao: "Remote",
		Tipo:        "Part-time",
		Publicada:   "1 day ago",
		Descricao:   "Design delightful user experiences for our SaaS products. Strong Figma portfolio expected.",
		URL:         "https://example.com/jobs/5",
	},
	{
		ID:          "6",
		Titulo:      "DevOps Engineer",
		Empresa:     "CloudBase",
		Localizacao: "Nairobi, Kenya",
		Tipo:        "Full-time",
		Publicada:   "4 days ago",
		Descricao:   "Own our CI/CD pipelines and Kubernetes clusters. Terraform and AWS experience required.",
		URL:         "https://example.com/jobs/6",
	},
	{
		ID:          "7",
		Titulo:      "Customer Success Specialist",
		Empresa:     "HelpFirst",
		Localizacao: "Accra, Ghana",
		Tipo:        "Full-time",
		Publicada:   "2 weeks ago",
		Descricao:   "Support and onboard our B2B customers. Great communication skills and patience required.",
		URL:         "https://example.com/jobs/7",
	},
	{
		ID:          "8",
		Titulo:      "Mobile Developer",
		Empresa:     "Appify",
		Localizacao: "Lagos, Nigeria",
		Tipo:        "Contract",
		Publicada:   "6 days ago",
		Descricao:   "Build and ship our Flutter app for Android and iOS. Experience with offline-first architectures is a plus.",
		URL:         "https://example.com/jobs/8",
	},
}
