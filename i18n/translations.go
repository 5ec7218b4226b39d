package i18n

var translations = map[Lang]map[Key]string{
	ZH: {
		// Document titles
		"title.home":       "梁绍杰 - 个人主页",
		"title.education":  "教育经历 - 梁绍杰",
		"title.experience": "实习经历 - 梁绍杰",
		"title.projects":   "项目展示 - 梁绍杰",
		"title.contact":    "联系方式 - 梁绍杰",

		// Navigation
		"nav.home":       "首页",
		"nav.education":  "教育经历",
		"nav.experience": "实习经历",
		"nav.projects":   "项目展示",
		"nav.contact":    "联系方式",
		"logo":           "梁绍杰",

		// Home
		"home.title":                  "梁绍杰",
		"home.subtitle":               "数据分析师 / 机器学习工程师",
		"home.description":            "热爱数据科学，专注于机器学习算法研究与应用，具备扎实的统计学基础和编程能力，致力于通过数据驱动的方法解决实际问题。",
		"home.stats.experience.label": "年项目经验",
		"home.stats.projects.label":   "完成项目",
		"home.stats.skills.label":     "技术技能",
		"home.stats.awards.label":     "获奖证书",
		"home.cta.projects":           "查看项目",
		"home.cta.contact":            "联系我",

		// Education
		"education.title":                "教育经历",
		"education.subtitle":             "不断学习，持续提升",
		"education.master.time":          "2026 - 2027",
		"education.master.degree":        "数据科学硕士",
		"education.master.school":        "莫纳什大学",
		"education.master.description":   "深入学习数据挖掘、机器学习、深度学习等前沿技术，参与实际数据分析项目，提升解决复杂问题的能力。",
		"education.bachelor.time":        "2021 - 2025",
		"education.bachelor.degree":      "国际贸易学士",
		"education.bachelor.school":      "宁波大学",
		"education.bachelor.description": "系统学习经济学理论、国际贸易实务、数据分析基础等课程，为后续数据科学学习奠定坚实基础。",
		"education.skills.title":         "核心技能",
		"education.skills.statistics":    "统计学",
		"education.skills.python":        "Python",
		"education.skills.ml":            "机器学习",
		"education.skills.visualization": "数据可视化",

		// Experience
		"experience.title":            "实习经历",
		"experience.subtitle":         "实践出真知，经验促成长",
		"experience.job1.title":       "数据分析实习生",
		"experience.job1.company":     "某知名互联网公司",
		"experience.job1.time":        "2024.06 - 2024.09",
		"experience.job1.description": "负责用户行为数据的收集、清洗和分析，使用Python和SQL进行数据处理，构建用户画像模型，为产品优化提供数据支持。",
		"experience.job2.title":       "数据科学助理",
		"experience.job2.company":     "某金融科技公司",
		"experience.job2.time":        "2023.12 - 2024.03",
		"experience.job2.description": "参与风控模型的开发与优化，运用机器学习算法进行信用评估，协助构建自动化风控系统，提升风险识别准确率。",

		// Projects
		"projects.title":                "项目展示",
		"projects.subtitle":             "技术创新，解决实际问题",
		"projects.project1.title":       "用户行为分析系统",
		"projects.project1.description": "基于大数据技术栈构建的用户行为分析平台，实时处理用户行为数据，提供多维度分析报表和可视化展示。",
		"projects.project2.title":       "智能推荐算法",
		"projects.project2.description": "开发基于协同过滤和深度学习的混合推荐系统，为用户提供个性化内容推荐，提升用户体验和平台粘性。",
		"projects.project3.title":       "金融风控模型",
		"projects.project3.description": "构建基于机器学习的金融风控系统，通过多维度数据特征分析，实现实时风险预警和信用评估。",
		"projects.viewDetails":          "查看详情",

		// Contact
		"contact.title":                    "联系方式",
		"contact.subtitle":                 "让我们一起探讨数据科学的无限可能",
		"contact.form.title":               "发送消息",
		"contact.form.name":                "姓名",
		"contact.form.name.placeholder":    "请输入您的姓名",
		"contact.form.name.error":          "请输入有效的姓名",
		"contact.form.email":               "邮箱",
		"contact.form.email.placeholder":   "请输入您的邮箱地址",
		"contact.form.email.error":         "请输入有效的邮箱地址",
		"contact.form.subject":             "主题",
		"contact.form.subject.placeholder": "请输入消息主题",
		"contact.form.message":             "消息内容",
		"contact.form.message.placeholder": "请输入您的消息内容...",
		"contact.form.message.error":       "消息内容不能少于10个字符",
		"contact.form.submit":              "发送消息",
		"contact.info.title":               "联系信息",
		"contact.info.location":            "位置",
		"contact.info.location.detail":     "中国 · 浙江",

		// Notifications
		"notify.form.invalid":  "请检查表单信息",
		"notify.send.success":  "消息发送成功！我会尽快回复您。",
		"notify.send.failure":  "发送失败，请稍后重试或直接使用邮箱联系。",
		"footer.copyright":     "© 2024 梁绍杰. 保留所有权利.",
		"theme.toggle.tooltip": "切换主题",
	},
	EN: {
		// Document titles
		"title.home":       "Liang Shaojie - Personal Website",
		"title.education":  "Education - Liang Shaojie",
		"title.experience": "Experience - Liang Shaojie",
		"title.projects":   "Projects - Liang Shaojie",
		"title.contact":    "Contact - Liang Shaojie",

		// Navigation
		"nav.home":       "Home",
		"nav.education":  "Education",
		"nav.experience": "Experience",
		"nav.projects":   "Projects",
		"nav.contact":    "Contact",
		"logo":           "Liang Shaojie",

		// Home
		"home.title":                  "Liang Shaojie",
		"home.subtitle":               "Data Analyst / ML Engineer",
		"home.description":            "Passionate about data science, specializing in machine learning research and applications. With solid foundations in statistics and programming, committed to solving real-world problems through data-driven approaches.",
		"home.stats.experience.label": "Years Experience",
		"home.stats.projects.label":   "Projects Completed",
		"home.stats.skills.label":     "Technical Skills",
		"home.stats.awards.label":     "Awards & Certificates",
		"home.cta.projects":           "View Projects",
		"home.cta.contact":            "Contact Me",

		// Education
		"education.title":                "Education",
		"education.subtitle":             "Continuous Learning, Continuous Growth",
		"education.master.time":          "2026 - 2027",
		"education.master.degree":        "Master of Data Science",
		"education.master.school":        "Monash University",
		"education.master.description":   "In-depth study of data mining, machine learning and deep learning, working on practical data analysis projects to sharpen problem-solving skills.",
		"education.bachelor.time":        "2021 - 2025",
		"education.bachelor.degree":      "Bachelor of International Trade",
		"education.bachelor.school":      "Ningbo University",
		"education.bachelor.description": "Studied economic theory, international trade practice and data analysis fundamentals, laying the groundwork for later data science study.",
		"education.skills.title":         "Core Skills",
		"education.skills.statistics":    "Statistics",
		"education.skills.python":        "Python",
		"education.skills.ml":            "Machine Learning",
		"education.skills.visualization": "Data Visualization",

		// Experience
		"experience.title":            "Experience",
		"experience.subtitle":         "Practice Makes Perfect, Experience Promotes Growth",
		"experience.job1.title":       "Data Analysis Intern",
		"experience.job1.company":     "Leading Internet Company",
		"experience.job1.time":        "2024.06 - 2024.09",
		"experience.job1.description": "Collected, cleaned and analyzed user behavior data with Python and SQL, built user profile models and supported product optimization with data.",
		"experience.job2.title":       "Data Science Assistant",
		"experience.job2.company":     "Fintech Company",
		"experience.job2.time":        "2023.12 - 2024.03",
		"experience.job2.description": "Developed and tuned risk control models, applied machine learning to credit assessment and helped build an automated risk control system.",

		// Projects
		"projects.title":                "Projects",
		"projects.subtitle":             "Technical Innovation, Solving Real Problems",
		"projects.project1.title":       "User Behavior Analysis System",
		"projects.project1.description": "A user behavior analysis platform on a big data stack, processing events in real time with multi-dimensional reports and visualizations.",
		"projects.project2.title":       "Intelligent Recommendation Algorithm",
		"projects.project2.description": "A hybrid recommender combining collaborative filtering and deep learning to personalize content and improve engagement.",
		"projects.project3.title":       "Financial Risk Control Model",
		"projects.project3.description": "A machine learning risk control system providing real-time risk warnings and credit assessment from multi-dimensional features.",
		"projects.viewDetails":          "View Details",

		// Contact
		"contact.title":                    "Contact",
		"contact.subtitle":                 "Let's Explore the Possibilities of Data Science Together",
		"contact.form.title":               "Send Message",
		"contact.form.name":                "Name",
		"contact.form.name.placeholder":    "Please enter your name",
		"contact.form.name.error":          "Please enter a valid name",
		"contact.form.email":               "Email",
		"contact.form.email.placeholder":   "Please enter your email address",
		"contact.form.email.error":         "Please enter a valid email address",
		"contact.form.subject":             "Subject",
		"contact.form.subject.placeholder": "Please enter message subject",
		"contact.form.message":             "Message",
		"contact.form.message.placeholder": "Please enter your message...",
		"contact.form.message.error":       "Message content must be at least 10 characters",
		"contact.form.submit":              "Send Message",
		"contact.info.title":               "Contact Information",
		"contact.info.location":            "Location",
		"contact.info.location.detail":     "Zhejiang, China",

		// Notifications
		"notify.form.invalid":  "Please check the form",
		"notify.send.success":  "Message sent! I will get back to you soon.",
		"notify.send.failure":  "Sending failed, please try again later or email me directly.",
		"footer.copyright":     "© 2024 Liang Shaojie. All rights reserved.",
		"theme.toggle.tooltip": "Toggle theme",
	},
}
