package seed

import "github.com/portfolio/backend/internal/model"

func strPtr(s string) *string { return &s }

var projectFixtures = []model.ProjectInput{
	{
		Title:       "Premium E-commerce Platform",
		Subtitle:    "Complete Redesign for Luxury Fashion",
		Description: "A full rebuild of a luxury e-commerce platform for premium fashion brands, focused on a high-end user experience, conversion optimisation and advanced personalisation. It includes 3D product views, AI-driven recommendations and a frictionless checkout.",
		TechStack:   []string{"React", "Next.js", "TypeScript", "GSAP", "Framer Motion", "Tailwind CSS", "Node.js", "MongoDB"},
		Category:    "E-commerce",
		HeroImage:   "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?fm=jpg&q=85",
		GalleryImages: []string{
			"https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg",
			"https://images.unsplash.com/photo-1657216328535-e981d223dee3?fm=jpg&q=85",
			"https://images.unsplash.com/photo-1657216328529-3852a5f372cb?fm=jpg&q=85",
		},
		Challenge: "The client needed a modern store that appeals to luxury shoppers while staying fast on every device. The main problems were a high cart abandonment rate and no personalisation.",
		Solution:  "A refined design system with premium animation, intuitive navigation and advanced filtering, plus AI recommendations, 3D product previews and a streamlined checkout with flexible payment options.",
		Process:   "Research & Analysis → User Journey Mapping → Wireframing → High-fidelity Prototyping → Development → Testing & Optimisation → Launch",
		Results:   "180% higher conversion rate, 55% less cart abandonment, 95% better engagement metrics and a 220% increase in average order value.",
		LiveURL:   strPtr("https://premium-ecommerce-platform.example.com"),
		Featured:  true,
	},
	{
		Title:       "AI Analytics Dashboard",
		Subtitle:    "An Intelligent Interface for Business Intelligence",
		Description: "An advanced analytics dashboard for an AI-powered business intelligence platform with real-time visualisation, predictive analysis and an interface that makes complex data readable. It processes more than a million data points a day.",
		TechStack:   []string{"Vue.js", "D3.js", "WebGL", "Python", "TensorFlow", "Sass", "FastAPI", "PostgreSQL"},
		Category:    "Data Visualisation",
		HeroImage:   "https://images.unsplash.com/photo-1551650992-ee4fd47df41f?fm=jpg&q=85",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?fm=jpg&q=85",
			"https://images.unsplash.com/photo-1581092162384-8987c1d64718?fm=jpg&q=85",
		},
		Challenge: "Make complex AI analysis approachable for non-technical users without losing the depth data specialists need.",
		Solution:  "A layered interface built on progressive disclosure, data storytelling and configurable visualisation components that adapt to the user's level.",
		Process:   "User Research → Information Architecture → Interaction Design → Prototyping → Usability Testing → Implementation → Optimisation",
		Results:   "70% less time to insight, 45% higher adoption, 94% user satisfaction and 60% more accurate data-driven decisions.",
		LiveURL:   strPtr("https://ai-analytics-dashboard.example.com"),
		Featured:  true,
	},
	{
		Title:       "Mobile Banking App",
		Subtitle:    "Next-generation Digital Banking",
		Description: "A new mobile banking app built around security, usability and innovation, with contactless payments, integrated investing and a personal AI assistant for financial advice.",
		TechStack:   []string{"React Native", "TypeScript", "Node.js", "Express", "MongoDB", "Blockchain", "AI/ML"},
		Category:    "Mobile Banking",
		HeroImage:   "https://images.unsplash.com/photo-1681826292838-c37fbd22263a?fm=jpg&q=85",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1609921141835-710b7fa6e438?fm=jpg&q=85",
		},
		Challenge: "Build a banking app that is both strongly secured and effortless to use.",
		Solution:  "Multi-layer biometric authentication, a minimal gesture-driven UI and AI features for personalised financial recommendations.",
		Process:   "Security Requirements → UX Research → Prototyping → Security Testing → Development → Beta Testing → Launch",
		Results:   "Sub-0.3 second response times, a 99.9% security score, 85% adoption in six months and 40% more mobile transactions.",
		LiveURL:   strPtr("https://premium-banking-app.example.com"),
		Featured:  true,
	},
	{
		Title:       "Exclusive Real Estate Portal",
		Subtitle:    "A Digital Platform for Premium Properties",
		Description: "A luxury real estate portal with 3D virtual tours, real-time market analysis, buyer matchmaking and smart search filters.",
		TechStack:   []string{"Next.js", "Three.js", "WebGL", "Mapbox", "Prisma", "PostgreSQL", "Stripe"},
		Category:    "Real Estate",
		HeroImage:   "https://images.unsplash.com/photo-1613490493576-7fde63acd811?fm=jpg&q=85",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1582268611958-ebfd161ef9cf?fm=jpg&q=85",
		},
		Challenge: "Convey the exclusivity of premium properties while giving agents and buyers serious technical tools.",
		Solution:  "Immersive 3D tours, predictive market analytics and an elegant interface, integrated with advanced mapping services.",
		Process:   "Market Analysis → Buyer Research → Experience Design → 3D Development → Service Integration → Testing → Launch",
		Results:   "150% more time on site, 80% better lead quality and 35% more transactions closed through the platform.",
		LiveURL:   strPtr("https://exclusive-real-estate.example.com"),
		Featured:  true,
	},
	{
		Title:       "Enterprise CRM System",
		Subtitle:    "A Complete Customer Relationship Platform",
		Description: "An enterprise CRM for large companies with AI customer-behaviour analysis, sales automation and churn prediction, built as modular components that can be tailored per industry.",
		TechStack:   []string{"React", "Node.js", "Express", "MongoDB", "Redis", "Elasticsearch", "Docker", "AWS"},
		Category:    "Enterprise Software",
		HeroImage:   "https://images.unsplash.com/photo-1581092162384-8987c1d64718?fm=jpg&q=85",
		GalleryImages: []string{
			"https://images.pexels.com/photos/430205/pexels-photo-430205.jpeg",
		},
		Challenge: "Handle large data volumes, stay easy to customise for different industries and surface actionable insight in real time.",
		Solution:  "A microservice architecture with REST and GraphQL APIs, distributed Redis caching and machine learning for predictive analysis.",
		Process:   "Enterprise Requirements → System Architecture → Modular Design → Microservices → AI Integration → Stress Testing → Deployment",
		Results:   "Over 100,000 interactions processed daily, 60% faster customer response, 45% better lead conversion and 30% lower operating cost.",
		LiveURL:   strPtr("https://enterprise-crm.example.com"),
		Featured:  false,
	},
}

var contactFixtures = []model.ContactInput{
	{
		Name:    "Portfolio Bot",
		Email:   "hello@example.com",
		Subject: "Welcome",
		Message: "Contact form submissions will appear here, newest first.",
	},
}
