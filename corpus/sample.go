package corpus

import "github.com/Sanjay1766/OptiSearch-AI/core"

// Sample returns a built-in internship dataset spanning the known places and
// a spread of categories. The seeder writes it out as CSV so a fresh checkout
// can serve searches without external data.
func Sample() []core.Internship {
	return []core.Internship{
		{
			Id: 1, Title: "Python Developer Intern", Company: "TechNova Solutions",
			Description: "Build and maintain backend services with Python and Flask. Write REST endpoints, unit tests and deployment scripts.",
			SkillsRequired: "Python, Flask, REST APIs, SQL", Category: "Technology",
			Location: "Bangalore", Latitude: 12.9716, Longitude: 77.5946,
			Stipend: "INR 15000/month", DurationMonths: 6,
		},
		{
			Id: 2, Title: "Java Backend Intern", Company: "CodeWorks Labs",
			Description: "Develop microservices in Java with Spring Boot. Work on order processing and messaging integrations.",
			SkillsRequired: "Java, Spring Boot, MySQL, Kafka", Category: "Technology",
			Location: "Delhi", Latitude: 28.7041, Longitude: 77.1025,
			Stipend: "INR 12000/month", DurationMonths: 6,
		},
		{
			Id: 3, Title: "Machine Learning Intern", Company: "DataMinds Analytics",
			Description: "Train and evaluate classification models on customer data. Feature engineering, model tuning and reporting.",
			SkillsRequired: "Python, scikit-learn, Pandas, Machine Learning", Category: "Data Science",
			Location: "Bangalore", Latitude: 12.9716, Longitude: 77.5946,
			Stipend: "INR 20000/month", DurationMonths: 3,
		},
		{
			Id: 4, Title: "Data Analyst Intern", Company: "InsightEdge",
			Description: "Analyze product usage data, build dashboards and present weekly findings to the growth team.",
			SkillsRequired: "SQL, Excel, Tableau, Statistics", Category: "Data Science",
			Location: "Mumbai", Latitude: 19.0760, Longitude: 72.8777,
			Stipend: "INR 10000/month", DurationMonths: 3,
		},
		{
			Id: 5, Title: "Frontend Developer Intern", Company: "PixelSoft",
			Description: "Implement responsive interfaces in React. Collaborate with designers on component libraries.",
			SkillsRequired: "JavaScript, React, HTML, CSS", Category: "Technology",
			Location: "Pune", Latitude: 18.5204, Longitude: 73.8567,
			Stipend: "INR 12000/month", DurationMonths: 4,
		},
		{
			Id: 6, Title: "DevOps Intern", Company: "CloudNine Infra",
			Description: "Automate deployments with Docker and CI pipelines. Monitor services and improve alerting.",
			SkillsRequired: "Docker, Linux, AWS, CI/CD", Category: "Technology",
			Location: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867,
			Stipend: "INR 18000/month", DurationMonths: 6,
		},
		{
			Id: 7, Title: "Digital Marketing Intern", Company: "BrandCraft Media",
			Description: "Plan and run social media campaigns. Track engagement metrics and prepare content calendars.",
			SkillsRequired: "Social Media, SEO, Content Writing, Analytics", Category: "Marketing",
			Location: "Mumbai", Latitude: 19.0760, Longitude: 72.8777,
			Stipend: "INR 8000/month", DurationMonths: 3,
		},
		{
			Id: 8, Title: "UI/UX Design Intern", Company: "DesignHive Studio",
			Description: "Design wireframes and prototypes for mobile apps. Conduct usability reviews with the product team.",
			SkillsRequired: "Figma, Wireframing, Prototyping, User Research", Category: "Design",
			Location: "Bangalore", Latitude: 12.9716, Longitude: 77.5946,
			Stipend: "INR 10000/month", DurationMonths: 4,
		},
		{
			Id: 9, Title: "Finance Intern", Company: "CapitalBridge Advisors",
			Description: "Assist with financial modelling and quarterly reporting. Reconcile accounts and prepare summaries.",
			SkillsRequired: "Excel, Accounting, Financial Modelling", Category: "Finance",
			Location: "Mumbai", Latitude: 19.0760, Longitude: 72.8777,
			Stipend: "INR 12000/month", DurationMonths: 6,
		},
		{
			Id: 10, Title: "Data Engineering Intern", Company: "StreamForge",
			Description: "Build data pipelines moving events into the warehouse. Write transformation jobs and data quality checks.",
			SkillsRequired: "Python, SQL, Airflow, Spark", Category: "Data Science",
			Location: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867,
			Stipend: "INR 22000/month", DurationMonths: 6,
		},
		{
			Id: 11, Title: "Android Developer Intern", Company: "Appverse Mobile",
			Description: "Ship features in a Kotlin codebase. Fix crashes, write instrumentation tests and profile performance.",
			SkillsRequired: "Kotlin, Android, Git", Category: "Technology",
			Location: "Chennai", Latitude: 13.0827, Longitude: 80.2707,
			Stipend: "INR 14000/month", DurationMonths: 6,
		},
		{
			Id: 12, Title: "Content Writing Intern", Company: "WordWeave",
			Description: "Write blog posts and product copy for technology clients. Edit drafts against the house style guide.",
			SkillsRequired: "Writing, Editing, SEO, Research", Category: "Content",
			Location: "Delhi", Latitude: 28.7041, Longitude: 77.1025,
			Stipend: "INR 7000/month", DurationMonths: 3,
		},
		{
			Id: 13, Title: "Cloud Engineering Intern", Company: "SkyStack Systems",
			Description: "Provision infrastructure on AWS with Terraform. Harden security groups and document runbooks.",
			SkillsRequired: "AWS, Terraform, Linux, Networking", Category: "Technology",
			Location: "Gurgaon", Latitude: 28.4595, Longitude: 77.0266,
			Stipend: "INR 20000/month", DurationMonths: 6,
		},
		{
			Id: 14, Title: "Business Analyst Intern", Company: "Metric Partners",
			Description: "Gather requirements from stakeholders and turn them into specifications. Track delivery metrics.",
			SkillsRequired: "Excel, SQL, Communication, Documentation", Category: "Finance",
			Location: "Noida", Latitude: 28.5721, Longitude: 77.3565,
			Stipend: "INR 11000/month", DurationMonths: 4,
		},
		{
			Id: 15, Title: "NLP Research Intern", Company: "LinguaTech AI",
			Description: "Experiment with text classification and named entity recognition on support tickets.",
			SkillsRequired: "Python, NLP, PyTorch, Machine Learning", Category: "Data Science",
			Location: "Pune", Latitude: 18.5204, Longitude: 73.8567,
			Stipend: "INR 25000/month", DurationMonths: 6,
		},
		{
			Id: 16, Title: "QA Automation Intern", Company: "TestRight Software",
			Description: "Write end-to-end test suites with Selenium. Triage failures and maintain the test environment.",
			SkillsRequired: "Selenium, Python, Test Automation", Category: "Technology",
			Location: "Kolkata", Latitude: 22.5726, Longitude: 88.3639,
			Stipend: "INR 9000/month", DurationMonths: 3,
		},
		{
			Id: 17, Title: "Graphic Design Intern", Company: "Inkline Creative",
			Description: "Produce social media creatives and marketing collateral. Maintain brand asset libraries.",
			SkillsRequired: "Photoshop, Illustrator, Branding", Category: "Design",
			Location: "Jaipur", Latitude: 26.9124, Longitude: 75.7873,
			Stipend: "INR 6000/month", DurationMonths: 3,
		},
		{
			Id: 18, Title: "HR Operations Intern", Company: "PeopleFirst Consulting",
			Description: "Support recruitment coordination and onboarding. Keep employee records current.",
			SkillsRequired: "Communication, MS Office, Recruitment", Category: "Human Resources",
			Location: "Lucknow", Latitude: 26.8467, Longitude: 80.9462,
			Stipend: "INR 5000/month", DurationMonths: 3,
		},
		{
			Id: 19, Title: "Full Stack Developer Intern", Company: "StackBridge",
			Description: "Work across a Node.js API and React frontend. Implement features end to end with code review.",
			SkillsRequired: "JavaScript, Node.js, React, MongoDB", Category: "Technology",
			Location: "Ahmedabad", Latitude: 23.0225, Longitude: 72.5714,
			Stipend: "INR 13000/month", DurationMonths: 6,
		},
		{
			Id: 20, Title: "Data Visualization Intern", Company: "ChartHouse Analytics",
			Description: "Build interactive dashboards for client reporting. Translate analysis into clear visual stories.",
			SkillsRequired: "Tableau, Power BI, SQL, Data Visualization", Category: "Data Science",
			Location: "Delhi", Latitude: 28.7041, Longitude: 77.1025,
			Stipend: "INR 12000/month", DurationMonths: 4,
		},
		{
			Id: 21, Title: "Embedded Systems Intern", Company: "MicroCore Devices",
			Description: "Write firmware for sensor boards in C. Debug hardware integration issues with the electronics team.",
			SkillsRequired: "C, Embedded Systems, Microcontrollers", Category: "Technology",
			Location: "Chennai", Latitude: 13.0827, Longitude: 80.2707,
			Stipend: "INR 15000/month", DurationMonths: 6,
		},
		{
			Id: 22, Title: "Performance Marketing Intern", Company: "GrowthLoop Digital",
			Description: "Run paid campaigns on search and social. Optimize budgets against acquisition targets.",
			SkillsRequired: "Google Ads, Facebook Ads, Analytics, SEO", Category: "Marketing",
			Location: "Gurgaon", Latitude: 28.4595, Longitude: 77.0266,
			Stipend: "INR 10000/month", DurationMonths: 4,
		},
		{
			Id: 23, Title: "Backend Developer Intern", Company: "Serverline Technologies",
			Description: "Extend Go services behind the public API. Add endpoints, improve logging and write integration tests.",
			SkillsRequired: "Go, PostgreSQL, REST APIs, Docker", Category: "Technology",
			Location: "Pune", Latitude: 18.5204, Longitude: 73.8567,
			Stipend: "INR 18000/month", DurationMonths: 6,
		},
		{
			Id: 24, Title: "Financial Research Intern", Company: "Northgate Capital",
			Description: "Research listed companies and draft sector notes. Maintain valuation models under supervision.",
			SkillsRequired: "Financial Analysis, Excel, Research, Valuation", Category: "Finance",
			Location: "Mumbai", Latitude: 19.0760, Longitude: 72.8777,
			Stipend: "INR 15000/month", DurationMonths: 6,
		},
	}
}
