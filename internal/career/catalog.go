package career

// Path is a catalog entry describing one career path for the read-only
// career-paths endpoint.
type Path struct {
	Name               PathName `json:"name"`
	Description        string   `json:"description"`
	Skills             []string `json:"skills"`
	Languages          []string `json:"languages"`
	Advantages         []string `json:"advantages"`
	FutureProspects    string   `json:"futureProspects"`
	SalaryRangeNigeria string   `json:"salaryRangeNigeria"`
	SalaryRangeGlobal  string   `json:"salaryRangeGlobal"`
}

// Catalog returns the full career-path catalog in display order.
func Catalog() []Path {
	return []Path{
		{
			Name:               PathAI,
			Description:        "Artificial Intelligence and Data Science focus on creating intelligent systems that can learn, reason, and make decisions. It involves working with large datasets to extract insights and build predictive models.",
			Skills:             []string{"Machine Learning", "Deep Learning", "Python/R", "Data Visualization", "Statistics", "Natural Language Processing"},
			Languages:          []string{"Python", "R", "SQL", "Java", "C++"},
			Advantages:         []string{"High demand", "Cutting-edge technology", "High impact on various industries"},
			FutureProspects:    "AI is expected to grow exponentially, impacting everything from healthcare to autonomous vehicles. Data scientists are crucial for business intelligence.",
			SalaryRangeNigeria: "₦250,000 - ₦1,000,000 / month",
			SalaryRangeGlobal:  "$120,000 - $250,000 / year",
		},
		{
			Name:               PathCybersecurity,
			Description:        "Cybersecurity professionals protect computer systems, networks, and data from theft, damage, or unauthorized access. It's a critical field for ensuring digital safety.",
			Skills:             []string{"Network Security", "Ethical Hacking", "Cryptography", "Risk Assessment", "Incident Response"},
			Languages:          []string{"Python", "Bash", "PowerShell", "SQL"},
			Advantages:         []string{"Extremely high demand", "Job security", "Critical importance in all sectors"},
			FutureProspects:    "With increasing cyber threats, the need for skilled cybersecurity experts will continue to rise. Specializations like cloud security and IoT security are growing fields.",
			SalaryRangeNigeria: "₦200,000 - ₦800,000 / month",
			SalaryRangeGlobal:  "$100,000 - $200,000 / year",
		},
		{
			Name:               PathNetworking,
			Description:        "Networking involves designing, building, and maintaining the communication networks that allow devices to connect and share information, from small office LANs to the global internet.",
			Skills:             []string{"Routing & Switching (Cisco/Juniper)", "Network Protocols (TCP/IP)", "Firewall Management", "Cloud Networking", "Network Troubleshooting"},
			Languages:          []string{"Python (for automation)", "Bash"},
			Advantages:         []string{"Foundation of all IT infrastructure", "Stable career path", "Opportunities for specialization"},
			FutureProspects:    "The shift to cloud computing and software-defined networking (SDN) is transforming the field, creating new opportunities for network engineers with automation skills.",
			SalaryRangeNigeria: "₦180,000 - ₦600,000 / month",
			SalaryRangeGlobal:  "$90,000 - $160,000 / year",
		},
		{
			Name:               PathWebDev,
			Description:        "Web Development involves creating websites and web applications. It's divided into front-end (what the user sees), back-end (server-side logic), and full-stack (both).",
			Skills:             []string{"HTML/CSS/JavaScript", "React/Angular/Vue.js (Frontend)", "Node.js/Django/PHP (Backend)", "Databases (SQL/NoSQL)", "API Design"},
			Languages:          []string{"JavaScript", "TypeScript", "Python", "PHP", "HTML/CSS"},
			Advantages:         []string{"High demand for e-commerce and online services", "Visible and creative work", "Strong freelance opportunities"},
			FutureProspects:    "The field is constantly evolving with new frameworks and technologies like WebAssembly and Progressive Web Apps (PWAs), ensuring continuous learning and growth.",
			SalaryRangeNigeria: "₦150,000 - ₦700,000 / month",
			SalaryRangeGlobal:  "$80,000 - $180,000 / year",
		},
		{
			Name:               PathCloud,
			Description:        "Cloud Computing focuses on delivering computing services—including servers, storage, databases, networking, software, and analytics—over the Internet ('the cloud').",
			Skills:             []string{"AWS/Azure/GCP", "DevOps (CI/CD)", "Containerization (Docker, Kubernetes)", "Infrastructure as Code (Terraform)", "Cloud Security"},
			Languages:          []string{"Python", "Go", "YAML"},
			Advantages:         []string{"Massive industry growth", "Scalability and efficiency for businesses", "High paying roles"},
			FutureProspects:    "Nearly all businesses are moving to the cloud, making cloud skills essential. Serverless computing and hybrid cloud solutions are key future trends.",
			SalaryRangeNigeria: "₦250,000 - ₦900,000 / month",
			SalaryRangeGlobal:  "$110,000 - $220,000 / year",
		},
		{
			Name:               PathSoftwareEng,
			Description:        "Software Engineering is the systematic application of engineering principles to the design, development, testing, and maintenance of software.",
			Skills:             []string{"Data Structures & Algorithms", "Object-Oriented Design", "Software Development Life Cycle (SDLC)", "Version Control (Git)", "Debugging and Testing"},
			Languages:          []string{"Java", "C#", "Python", "JavaScript", "Go", "Rust"},
			Advantages:         []string{"Versatile skill set applicable to many areas", "Strong problem-solving focus", "Foundation for many other tech roles"},
			FutureProspects:    "Software is everywhere. Opportunities are vast, from mobile app development to embedded systems. Specializing in areas like distributed systems or performance engineering is lucrative.",
			SalaryRangeNigeria: "₦200,000 - ₦850,000 / month",
			SalaryRangeGlobal:  "$100,000 - $200,000 / year",
		},
	}
}
