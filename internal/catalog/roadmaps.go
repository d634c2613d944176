package catalog

import "github.com/jonathan/careerpath/internal/types"

func milestone(id string, order int, title, description string, weeks int, skills, tasks []string, res types.LearningResource) types.Milestone {
	return types.Milestone{
		ID:           id,
		Order:        order,
		Title:        title,
		Description:  description,
		Duration:     weeks,
		DurationUnit: "weeks",
		Skills:       skills,
		Tasks:        tasks,
		Resources:    []types.LearningResource{res},
	}
}

func course(title, url, provider string, free bool) types.LearningResource {
	return types.LearningResource{Title: title, Type: "course", URL: url, Provider: provider, IsFree: free}
}

func docs(title, url, provider string) types.LearningResource {
	return types.LearningResource{Title: title, Type: "documentation", URL: url, Provider: provider, IsFree: true}
}

func book(title, url, provider string) types.LearningResource {
	return types.LearningResource{Title: title, Type: "book", URL: url, Provider: provider, IsFree: false}
}

func usd(minimum, maximum int) types.SalaryRange {
	return types.SalaryRange{Min: minimum, Max: maximum, Currency: "USD"}
}

// Roadmaps returns the 13 built-in career roadmaps.
func Roadmaps() []types.CareerRoadmap {
	return []types.CareerRoadmap{
		{
			ID:                "web-dev-roadmap",
			Title:             "Full-Stack Web Developer",
			Description:       "Build modern web applications end to end, from responsive interfaces to APIs and databases.",
			Category:          "Software Development",
			Difficulty:        "Beginner",
			EstimatedDuration: 12,
			DurationUnit:      "months",
			RequiredSkills:    []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "SQL"},
			SalaryRange:       usd(65000, 140000),
			JobDemand:         "Very High",
			Milestones: []types.Milestone{
				milestone("wdm-1", 1, "Web Fundamentals", "Learn how the web works and write semantic HTML and modern CSS.", 6,
					[]string{"HTML", "CSS", "Responsive Design"},
					[]string{"Build a personal landing page", "Recreate a layout with Flexbox and Grid"},
					course("Responsive Web Design", "https://www.freecodecamp.org/learn/2022/responsive-web-design/", "freeCodeCamp", true)),
				milestone("wdm-2", 2, "JavaScript Essentials", "Master the language: types, functions, the DOM and asynchronous code.", 8,
					[]string{"JavaScript", "DOM", "Async Programming"},
					[]string{"Build an interactive to-do app", "Fetch data from a public API"},
					docs("JavaScript Guide", "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", "MDN")),
				milestone("wdm-3", 3, "Frontend Framework", "Build component-driven interfaces with React and client-side routing.", 8,
					[]string{"React", "State Management", "TypeScript"},
					[]string{"Build a multi-page React app", "Add typed props and hooks"},
					docs("React Documentation", "https://react.dev/learn", "React")),
				milestone("wdm-4", 4, "Backend Development", "Design REST APIs with Node.js and persist data in a relational database.", 10,
					[]string{"Node.js", "Express", "SQL", "REST"},
					[]string{"Build a CRUD API", "Model a schema and write migrations"},
					course("Node.js and Express", "https://www.theodinproject.com/paths/full-stack-javascript", "The Odin Project", true)),
				milestone("wdm-5", 5, "Deployment and Portfolio", "Ship a full-stack project with CI, hosting and monitoring.", 6,
					[]string{"Git", "CI/CD", "Cloud Hosting"},
					[]string{"Deploy a full-stack app", "Publish a portfolio with three projects"},
					docs("GitHub Actions Documentation", "https://docs.github.com/en/actions", "GitHub")),
			},
		},
		{
			ID:                "data-science-roadmap",
			Title:             "Data Scientist",
			Description:       "Turn data into decisions with statistics, programming and machine learning.",
			Category:          "Data & Analytics",
			Difficulty:        "Intermediate",
			EstimatedDuration: 14,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Python", "Statistics", "SQL", "Pandas", "Machine Learning"},
			SalaryRange:       usd(85000, 165000),
			JobDemand:         "Very High",
			Milestones: []types.Milestone{
				milestone("dsr-1", 1, "Python for Data", "Write idiomatic Python and manipulate data with NumPy and Pandas.", 6,
					[]string{"Python", "NumPy", "Pandas"},
					[]string{"Clean a messy CSV dataset", "Write reusable analysis functions"},
					course("Python for Everybody", "https://www.py4e.com/", "University of Michigan", true)),
				milestone("dsr-2", 2, "Statistics and Probability", "Build intuition for distributions, inference and experiment design.", 8,
					[]string{"Statistics", "Probability", "Hypothesis Testing"},
					[]string{"Run an A/B test analysis", "Explain confidence intervals"},
					course("Statistics and Probability", "https://www.khanacademy.org/math/statistics-probability", "Khan Academy", true)),
				milestone("dsr-3", 3, "Data Visualization", "Communicate findings with clear charts and dashboards.", 4,
					[]string{"Matplotlib", "Seaborn", "Storytelling"},
					[]string{"Build an exploratory analysis notebook", "Publish a dashboard"},
					docs("Seaborn Tutorial", "https://seaborn.pydata.org/tutorial.html", "Seaborn")),
				milestone("dsr-4", 4, "Machine Learning Foundations", "Train, evaluate and tune supervised and unsupervised models.", 10,
					[]string{"Scikit-learn", "Model Evaluation", "Feature Engineering"},
					[]string{"Train a classifier end to end", "Compare models with cross-validation"},
					course("Machine Learning Specialization", "https://www.coursera.org/specializations/machine-learning-introduction", "Coursera", false)),
				milestone("dsr-5", 5, "Capstone Project", "Solve a real problem and present the results to stakeholders.", 6,
					[]string{"Communication", "SQL", "Project Delivery"},
					[]string{"Complete a Kaggle competition", "Write a project report"},
					docs("Kaggle Learn", "https://www.kaggle.com/learn", "Kaggle")),
			},
		},
		{
			ID:                "mobile-dev-roadmap",
			Title:             "Mobile App Developer",
			Description:       "Create native and cross-platform mobile apps for iOS and Android.",
			Category:          "Software Development",
			Difficulty:        "Intermediate",
			EstimatedDuration: 10,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Kotlin", "Swift", "React Native", "REST", "UI Design"},
			SalaryRange:       usd(75000, 150000),
			JobDemand:         "High",
			Milestones: []types.Milestone{
				milestone("mdr-1", 1, "Programming Foundations", "Learn Kotlin or Swift and core object-oriented design.", 6,
					[]string{"Kotlin", "Swift", "OOP"},
					[]string{"Solve 20 language exercises", "Model a small domain with classes"},
					docs("Kotlin Docs", "https://kotlinlang.org/docs/home.html", "JetBrains")),
				milestone("mdr-2", 2, "Native UI Development", "Build screens, navigation and lists with platform UI toolkits.", 8,
					[]string{"Jetpack Compose", "SwiftUI", "Navigation"},
					[]string{"Build a notes app", "Implement list and detail screens"},
					course("Android Basics with Compose", "https://developer.android.com/courses/android-basics-compose/course", "Google", true)),
				milestone("mdr-3", 3, "Cross-Platform Apps", "Share code across platforms with React Native or Flutter.", 8,
					[]string{"React Native", "Flutter", "State Management"},
					[]string{"Port the notes app cross-platform", "Integrate a REST API"},
					docs("React Native Docs", "https://reactnative.dev/docs/getting-started", "Meta")),
				milestone("mdr-4", 4, "Publishing and Monitoring", "Release to the app stores and track crashes and analytics.", 4,
					[]string{"App Store", "Play Console", "Crash Reporting"},
					[]string{"Publish an app to a test track", "Set up crash reporting"},
					docs("Launch Checklist", "https://developer.android.com/distribute/best-practices/launch/launch-checklist", "Google")),
			},
		},
		{
			ID:                "devops-roadmap",
			Title:             "DevOps Engineer",
			Description:       "Automate delivery and operate reliable infrastructure at scale.",
			Category:          "Infrastructure",
			Difficulty:        "Advanced",
			EstimatedDuration: 12,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Linux", "Docker", "Kubernetes", "CI/CD", "Terraform"},
			SalaryRange:       usd(90000, 170000),
			JobDemand:         "Very High",
			Milestones: []types.Milestone{
				milestone("dor-1", 1, "Linux and Networking", "Administer Linux systems and understand TCP/IP, DNS and HTTP.", 6,
					[]string{"Linux", "Bash", "Networking"},
					[]string{"Write shell automation scripts", "Configure a reverse proxy"},
					book("The Linux Command Line", "https://linuxcommand.org/tlcl.php", "No Starch Press")),
				milestone("dor-2", 2, "Containers", "Package and run services with Docker.", 4,
					[]string{"Docker", "Container Images"},
					[]string{"Containerize a web service", "Write a multi-stage Dockerfile"},
					docs("Docker Get Started", "https://docs.docker.com/get-started/", "Docker")),
				milestone("dor-3", 3, "Continuous Integration and Delivery", "Build pipelines that test and deploy every change.", 6,
					[]string{"CI/CD", "GitHub Actions", "Testing"},
					[]string{"Create a pipeline with test and deploy stages", "Add automated rollbacks"},
					docs("GitHub Actions Documentation", "https://docs.github.com/en/actions", "GitHub")),
				milestone("dor-4", 4, "Orchestration", "Run workloads on Kubernetes with health checks and autoscaling.", 8,
					[]string{"Kubernetes", "Helm"},
					[]string{"Deploy a service to a cluster", "Configure horizontal autoscaling"},
					docs("Kubernetes Basics", "https://kubernetes.io/docs/tutorials/kubernetes-basics/", "CNCF")),
				milestone("dor-5", 5, "Infrastructure as Code and Observability", "Provision infrastructure declaratively and monitor it.", 8,
					[]string{"Terraform", "Prometheus", "Grafana"},
					[]string{"Provision an environment with Terraform", "Build an alerting dashboard"},
					docs("Terraform Tutorials", "https://developer.hashicorp.com/terraform/tutorials", "HashiCorp")),
			},
		},
		{
			ID:                "cybersecurity-roadmap",
			Title:             "Cybersecurity Analyst",
			Description:       "Protect systems and data by detecting, analyzing and responding to threats.",
			Category:          "Security",
			Difficulty:        "Intermediate",
			EstimatedDuration: 12,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Networking", "Linux", "Security Operations", "Incident Response"},
			SalaryRange:       usd(80000, 155000),
			JobDemand:         "Very High",
			Milestones: []types.Milestone{
				milestone("csr-1", 1, "Security Fundamentals", "Learn the CIA triad, common threats and security controls.", 6,
					[]string{"Security Concepts", "Risk Management"},
					[]string{"Summarize the OWASP Top 10", "Write a threat model for a web app"},
					course("Google Cybersecurity Certificate", "https://www.coursera.org/professional-certificates/google-cybersecurity", "Coursera", false)),
				milestone("csr-2", 2, "Network Security", "Analyze traffic and harden networks.", 6,
					[]string{"Networking", "Wireshark", "Firewalls"},
					[]string{"Capture and analyze a packet trace", "Configure firewall rules"},
					docs("Wireshark User's Guide", "https://www.wireshark.org/docs/wsug_html_chunked/", "Wireshark")),
				milestone("csr-3", 3, "Security Operations", "Monitor events with a SIEM and triage alerts.", 8,
					[]string{"SIEM", "Log Analysis", "Security Operations"},
					[]string{"Build detection rules", "Triage a simulated alert queue"},
					course("SOC Level 1", "https://tryhackme.com/path/outline/soclevel1", "TryHackMe", false)),
				milestone("csr-4", 4, "Offensive Security Basics", "Understand attacker techniques through ethical hacking labs.", 8,
					[]string{"Penetration Testing", "Vulnerability Assessment"},
					[]string{"Complete five capture-the-flag rooms", "Write a vulnerability report"},
					course("Hack The Box Academy", "https://academy.hackthebox.com/", "Hack The Box", false)),
				milestone("csr-5", 5, "Incident Response and Certification", "Handle incidents end to end and prepare for Security+.", 6,
					[]string{"Incident Response", "Forensics"},
					[]string{"Write an incident response playbook", "Pass a Security+ practice exam"},
					docs("NIST Incident Handling Guide", "https://csrc.nist.gov/pubs/sp/800/61/r2/final", "NIST")),
			},
		},
		{
			ID:                "ui-ux-roadmap",
			Title:             "UI/UX Designer",
			Description:       "Design intuitive, accessible products grounded in user research.",
			Category:          "Design",
			Difficulty:        "Beginner",
			EstimatedDuration: 8,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Figma", "User Research", "Prototyping", "Visual Design"},
			SalaryRange:       usd(60000, 130000),
			JobDemand:         "High",
			Milestones: []types.Milestone{
				milestone("uxr-1", 1, "Design Principles", "Learn typography, color, layout and visual hierarchy.", 4,
					[]string{"Visual Design", "Typography"},
					[]string{"Redesign an existing screen", "Build a color system"},
					course("Google UX Design Certificate", "https://www.coursera.org/professional-certificates/google-ux-design", "Coursera", false)),
				milestone("uxr-2", 2, "User Research", "Plan interviews and usability tests and synthesize findings.", 6,
					[]string{"User Research", "Usability Testing"},
					[]string{"Interview five users", "Create personas and journey maps"},
					docs("UX Research Articles", "https://www.nngroup.com/topic/research-methods/", "Nielsen Norman Group")),
				milestone("uxr-3", 3, "Wireframing and Prototyping", "Turn ideas into interactive prototypes in Figma.", 6,
					[]string{"Figma", "Prototyping", "Wireframing"},
					[]string{"Prototype a mobile checkout flow", "Run a usability test on the prototype"},
					docs("Figma Learn", "https://help.figma.com/hc/en-us/categories/360002051613", "Figma")),
				milestone("uxr-4", 4, "Portfolio and Case Studies", "Document your process in compelling case studies.", 4,
					[]string{"Storytelling", "Presentation"},
					[]string{"Write three case studies", "Publish a portfolio site"},
					book("Don't Make Me Think", "https://sensible.com/dont-make-me-think/", "New Riders")),
			},
		},
		{
			ID:                "cloud-architect-roadmap",
			Title:             "Cloud Solutions Architect",
			Description:       "Design secure, scalable and cost-efficient systems on public cloud platforms.",
			Category:          "Infrastructure",
			Difficulty:        "Advanced",
			EstimatedDuration: 14,
			DurationUnit:      "months",
			RequiredSkills:    []string{"AWS", "Networking", "Security", "Terraform", "System Design"},
			SalaryRange:       usd(110000, 200000),
			JobDemand:         "High",
			Milestones: []types.Milestone{
				milestone("car-1", 1, "Cloud Fundamentals", "Understand core compute, storage and networking services.", 6,
					[]string{"AWS", "Cloud Concepts"},
					[]string{"Pass the Cloud Practitioner exam", "Deploy a static site to object storage"},
					course("AWS Cloud Practitioner Essentials", "https://aws.amazon.com/training/digital/aws-cloud-practitioner-essentials/", "AWS", true)),
				milestone("car-2", 2, "Networking and Identity", "Design VPCs, routing and identity and access policies.", 6,
					[]string{"VPC", "IAM", "Networking"},
					[]string{"Build a multi-tier VPC", "Write least-privilege IAM policies"},
					docs("Amazon VPC User Guide", "https://docs.aws.amazon.com/vpc/latest/userguide/", "AWS")),
				milestone("car-3", 3, "Scalable Architectures", "Apply caching, queues and autoscaling patterns.", 8,
					[]string{"System Design", "Load Balancing", "Messaging"},
					[]string{"Design a highly available web tier", "Add a queue-based worker"},
					docs("AWS Well-Architected Framework", "https://docs.aws.amazon.com/wellarchitected/latest/framework/welcome.html", "AWS")),
				milestone("car-4", 4, "Infrastructure as Code", "Codify environments with Terraform modules.", 6,
					[]string{"Terraform", "Automation"},
					[]string{"Write reusable Terraform modules", "Promote infrastructure across environments"},
					docs("Terraform Tutorials", "https://developer.hashicorp.com/terraform/tutorials", "HashiCorp")),
				milestone("car-5", 5, "Architect Certification", "Prepare for the Solutions Architect Associate exam.", 6,
					[]string{"Security", "Cost Optimization"},
					[]string{"Complete two practice exams", "Review a reference architecture"},
					course("Solutions Architect Associate Prep", "https://aws.amazon.com/certification/certified-solutions-architect-associate/", "AWS", false)),
			},
		},
		{
			ID:                "machine-learning-roadmap",
			Title:             "Machine Learning Engineer",
			Description:       "Build and deploy machine learning systems that run reliably in production.",
			Category:          "Data & Analytics",
			Difficulty:        "Advanced",
			EstimatedDuration: 16,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Python", "Machine Learning", "Deep Learning", "MLOps", "Linear Algebra"},
			SalaryRange:       usd(110000, 210000),
			JobDemand:         "Very High",
			Milestones: []types.Milestone{
				milestone("mlr-1", 1, "Math for Machine Learning", "Review linear algebra, calculus and probability.", 8,
					[]string{"Linear Algebra", "Calculus", "Probability"},
					[]string{"Implement gradient descent from scratch", "Work through matrix decomposition exercises"},
					course("Mathematics for Machine Learning", "https://www.coursera.org/specializations/mathematics-machine-learning", "Coursera", false)),
				milestone("mlr-2", 2, "Classical Machine Learning", "Train and evaluate classical models with scikit-learn.", 8,
					[]string{"Machine Learning", "Scikit-learn"},
					[]string{"Build a regression and a classification model", "Tune hyperparameters"},
					docs("Scikit-learn User Guide", "https://scikit-learn.org/stable/user_guide.html", "scikit-learn")),
				milestone("mlr-3", 3, "Deep Learning", "Build neural networks for vision and language tasks.", 10,
					[]string{"Deep Learning", "PyTorch"},
					[]string{"Train an image classifier", "Fine-tune a pretrained language model"},
					course("Practical Deep Learning for Coders", "https://course.fast.ai/", "fast.ai", true)),
				milestone("mlr-4", 4, "MLOps", "Version data and models and automate training pipelines.", 8,
					[]string{"MLOps", "Docker", "Experiment Tracking"},
					[]string{"Track experiments", "Automate a retraining pipeline"},
					course("Made With ML", "https://madewithml.com/", "Made With ML", true)),
				milestone("mlr-5", 5, "Model Serving", "Serve models behind APIs and monitor drift.", 6,
					[]string{"Model Serving", "Monitoring"},
					[]string{"Deploy a model API", "Add drift monitoring"},
					docs("TorchServe Documentation", "https://pytorch.org/serve/", "PyTorch")),
			},
		},
		{
			ID:                "product-manager-roadmap",
			Title:             "Product Manager",
			Description:       "Lead products from discovery to launch by aligning users, business and technology.",
			Category:          "Business",
			Difficulty:        "Intermediate",
			EstimatedDuration: 9,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Product Strategy", "User Research", "Analytics", "Communication", "Roadmapping"},
			SalaryRange:       usd(90000, 180000),
			JobDemand:         "High",
			Milestones: []types.Milestone{
				milestone("pmr-1", 1, "Product Fundamentals", "Learn the product lifecycle and the PM role.", 4,
					[]string{"Product Strategy", "Roadmapping"},
					[]string{"Write a product vision", "Analyze a competitor"},
					book("Inspired", "https://www.svpg.com/books/inspired-how-to-create-tech-products-customers-love-2nd-edition/", "SVPG")),
				milestone("pmr-2", 2, "Discovery and Research", "Validate problems and solutions with users.", 6,
					[]string{"User Research", "Experimentation"},
					[]string{"Run customer discovery interviews", "Design a smoke test"},
					book("The Mom Test", "https://www.momtestbook.com/", "Rob Fitzpatrick")),
				milestone("pmr-3", 3, "Metrics and Analytics", "Define success metrics and analyze product data.", 6,
					[]string{"Analytics", "SQL", "A/B Testing"},
					[]string{"Define a metric tree", "Analyze a funnel"},
					course("Product Analytics", "https://www.reforge.com/", "Reforge", false)),
				milestone("pmr-4", 4, "Delivery and Leadership", "Prioritize, write specs and lead cross-functional teams.", 6,
					[]string{"Communication", "Prioritization", "Agile"},
					[]string{"Write a PRD", "Run a sprint planning session"},
					docs("Atlassian Agile Coach", "https://www.atlassian.com/agile", "Atlassian")),
			},
		},
		{
			ID:                "digital-marketing-roadmap",
			Title:             "Digital Marketing Specialist",
			Description:       "Grow audiences and revenue through search, social, content and analytics.",
			Category:          "Marketing",
			Difficulty:        "Beginner",
			EstimatedDuration: 6,
			DurationUnit:      "months",
			RequiredSkills:    []string{"SEO", "Content Marketing", "Google Analytics", "Social Media", "Copywriting"},
			SalaryRange:       usd(50000, 110000),
			JobDemand:         "Medium",
			Milestones: []types.Milestone{
				milestone("dmr-1", 1, "Marketing Foundations", "Learn funnels, positioning and customer segmentation.", 4,
					[]string{"Marketing Strategy", "Copywriting"},
					[]string{"Write a positioning statement", "Map a customer journey"},
					course("Fundamentals of Digital Marketing", "https://skillshop.withgoogle.com/", "Google", true)),
				milestone("dmr-2", 2, "Search Engine Optimization", "Grow organic traffic with technical and content SEO.", 4,
					[]string{"SEO", "Keyword Research"},
					[]string{"Audit a website", "Build a keyword plan"},
					docs("SEO Starter Guide", "https://developers.google.com/search/docs/fundamentals/seo-starter-guide", "Google")),
				milestone("dmr-3", 3, "Social and Content", "Plan content calendars and run social campaigns.", 6,
					[]string{"Content Marketing", "Social Media"},
					[]string{"Create a month-long content calendar", "Run a small paid social campaign"},
					course("Content Marketing Certification", "https://academy.hubspot.com/courses/content-marketing", "HubSpot", true)),
				milestone("dmr-4", 4, "Analytics and Optimization", "Measure campaigns and optimize conversion.", 4,
					[]string{"Google Analytics", "A/B Testing"},
					[]string{"Set up conversion tracking", "Report on campaign ROI"},
					course("Google Analytics Certification", "https://skillshop.withgoogle.com/", "Google", true)),
			},
		},
		{
			ID:                "blockchain-roadmap",
			Title:             "Blockchain Developer",
			Description:       "Build decentralized applications and smart contracts.",
			Category:          "Software Development",
			Difficulty:        "Advanced",
			EstimatedDuration: 10,
			DurationUnit:      "months",
			RequiredSkills:    []string{"Solidity", "JavaScript", "Cryptography", "Ethereum", "Web3"},
			SalaryRange:       usd(90000, 190000),
			JobDemand:         "Medium",
			Milestones: []types.Milestone{
				milestone("bcr-1", 1, "Blockchain Fundamentals", "Understand consensus, hashing and public-key cryptography.", 4,
					[]string{"Cryptography", "Distributed Systems"},
					[]string{"Explain proof of stake", "Build a toy blockchain"},
					book("Mastering Ethereum", "https://github.com/ethereumbook/ethereumbook", "O'Reilly")),
				milestone("bcr-2", 2, "Smart Contracts", "Write and test Solidity contracts.", 8,
					[]string{"Solidity", "Ethereum"},
					[]string{"Deploy an ERC-20 token to a testnet", "Write contract unit tests"},
					course("CryptoZombies", "https://cryptozombies.io/", "CryptoZombies", true)),
				milestone("bcr-3", 3, "Decentralized Apps", "Connect frontends to contracts with Web3 libraries.", 6,
					[]string{"Web3", "JavaScript", "React"},
					[]string{"Build a wallet-connected dApp", "Index contract events"},
					docs("Ethers.js Documentation", "https://docs.ethers.org/", "ethers")),
				milestone("bcr-4", 4, "Security and Auditing", "Find and prevent smart contract vulnerabilities.", 6,
					[]string{"Smart Contract Security", "Auditing"},
					[]string{"Complete security challenges", "Audit an open-source contract"},
					course("Ethernaut", "https://ethernaut.openzeppelin.com/", "OpenZeppelin", true)),
			},
		},
		{
			ID:                "game-dev-roadmap",
			Title:             "Game Developer",
			Description:       "Design and program interactive games with modern engines.",
			Category:          "Software Development",
			Difficulty:        "Intermediate",
			EstimatedDuration: 12,
			DurationUnit:      "months",
			RequiredSkills:    []string{"C#", "Unity", "Game Design", "3D Math", "C++"},
			SalaryRange:       usd(55000, 130000),
			JobDemand:         "Medium",
			Milestones: []types.Milestone{
				milestone("gdr-1", 1, "Programming for Games", "Learn C# and the game loop.", 6,
					[]string{"C#", "OOP"},
					[]string{"Build a text adventure", "Implement a simple game loop"},
					docs("C# Documentation", "https://learn.microsoft.com/en-us/dotnet/csharp/", "Microsoft")),
				milestone("gdr-2", 2, "Game Engine Basics", "Build scenes, physics and input handling in Unity.", 8,
					[]string{"Unity", "Physics", "Input Systems"},
					[]string{"Build a 2D platformer", "Add collisions and scoring"},
					course("Unity Learn Pathways", "https://learn.unity.com/pathways", "Unity", true)),
				milestone("gdr-3", 3, "Game Design and 3D", "Apply game design principles and 3D math.", 8,
					[]string{"Game Design", "3D Math", "Shaders"},
					[]string{"Prototype a 3D level", "Write a basic shader"},
					book("The Art of Game Design", "https://www.schellgames.com/art-of-game-design", "CRC Press")),
				milestone("gdr-4", 4, "Shipping a Game", "Polish, test and publish a complete game.", 8,
					[]string{"Optimization", "Publishing"},
					[]string{"Publish a game on itch.io", "Profile and optimize performance"},
					docs("itch.io Creator Docs", "https://itch.io/docs/creators/", "itch.io")),
			},
		},
		{
			ID:                "data-engineer-roadmap",
			Title:             "Data Engineer",
			Description:       "Build the pipelines and platforms that make data reliable and available.",
			Category:          "Data & Analytics",
			Difficulty:        "Intermediate",
			EstimatedDuration: 12,
			DurationUnit:      "months",
			RequiredSkills:    []string{"SQL", "Python", "Apache Spark", "Airflow", "Data Modeling"},
			SalaryRange:       usd(90000, 175000),
			JobDemand:         "Very High",
			Milestones: []types.Milestone{
				milestone("der-1", 1, "SQL and Data Modeling", "Write advanced SQL and design dimensional models.", 6,
					[]string{"SQL", "Data Modeling"},
					[]string{"Design a star schema", "Write window-function queries"},
					course("Data Engineering Zoomcamp", "https://github.com/DataTalksClub/data-engineering-zoomcamp", "DataTalks.Club", true)),
				milestone("der-2", 2, "Programming and ETL", "Build batch ETL jobs in Python.", 6,
					[]string{"Python", "ETL"},
					[]string{"Write an incremental ETL job", "Add data quality checks"},
					docs("Pandas User Guide", "https://pandas.pydata.org/docs/user_guide/", "pandas")),
				milestone("der-3", 3, "Orchestration", "Schedule and monitor pipelines with Airflow.", 4,
					[]string{"Airflow", "Scheduling"},
					[]string{"Build a DAG with retries", "Set up pipeline alerting"},
					docs("Airflow Tutorials", "https://airflow.apache.org/docs/apache-airflow/stable/tutorial/", "Apache")),
				milestone("der-4", 4, "Big Data Processing", "Process large datasets with Spark.", 8,
					[]string{"Apache Spark", "Distributed Computing"},
					[]string{"Process a dataset with Spark", "Tune partitioning"},
					docs("Spark Quick Start", "https://spark.apache.org/docs/latest/quick-start.html", "Apache")),
				milestone("der-5", 5, "Streaming and Warehousing", "Stream events with Kafka and load a cloud warehouse.", 8,
					[]string{"Kafka", "Data Warehousing"},
					[]string{"Build a streaming pipeline", "Load data into a warehouse"},
					docs("Kafka Quickstart", "https://kafka.apache.org/quickstart", "Apache")),
			},
		},
	}
}
