package seed

var companies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Meta", "Netflix", "Uber", "Airbnb",
	"Stripe", "Shopify", "Salesforce", "Adobe", "Spotify", "Twitter", "LinkedIn",
	"Pinterest", "Dropbox", "Slack", "Zoom", "Snap", "Reddit", "Square", "PayPal",
	"Intel", "IBM", "Oracle", "VMware", "Cisco", "Tesla", "SpaceX", "Atlassian",
	"Canva", "Figma", "Notion", "Airtable", "Coinbase", "Robinhood", "GitHub",
	"Bloomberg", "Capital One", "JPMorgan", "Goldman Sachs", "Morgan Stanley", "Datadog",
}

var roles = []string{
	"Software Engineer", "Frontend Developer", "Backend Developer", "Full Stack Developer",
	"DevOps Engineer", "Data Scientist", "Machine Learning Engineer", "Product Manager",
	"UX Designer", "UI Designer", "QA Engineer", "Technical Lead", "Engineering Manager",
	"Site Reliability Engineer", "Security Engineer", "Cloud Architect", "iOS Developer",
	"Android Developer", "Mobile Developer", "Database Administrator", "Systems Engineer",
	"Data Engineer", "ML Ops Engineer", "Platform Engineer", "Infrastructure Engineer",
}

var locations = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX", "Boston, MA",
	"Los Angeles, CA", "Chicago, IL", "Denver, CO", "Portland, OR", "Atlanta, GA",
	"Remote - US", "Remote - Global", "Remote - East Coast", "Remote - West Coast",
	"London, UK", "Berlin, Germany", "Toronto, Canada", "Vancouver, Canada",
	"Amsterdam, Netherlands", "Sydney, Australia", "Singapore", "Tokyo, Japan",
}

// nil entries mean "no URL".
var urls = []*string{
	ptr("https://careers.google.com/jobs/123"),
	ptr("https://jobs.microsoft.com/job/456"),
	ptr("https://amazon.jobs/en/jobs/789"),
	ptr("https://boards.greenhouse.io/apple/jobs/101"),
	ptr("https://jobs.lever.co/meta/112"),
	ptr("https://www.linkedin.com/jobs/view/131"),
	ptr("https://wellfound.com/jobs/415"),
	nil,
}

// nil entries mean "no notes".
var notes = []*string{
	ptr("Had initial screening call with HR. Went well, they seemed interested."),
	ptr("Completed technical interview. Need to review algorithms more."),
	ptr("Received rejection email. Will reapply after gaining more experience."),
	ptr("Final round interview scheduled for next week."),
	ptr("Applied through referral. Waiting to hear back."),
	ptr("Received offer! Need to negotiate salary."),
	ptr("Ghosted after 3 interviews."),
	ptr("Hiring manager seemed impressed with my portfolio."),
	ptr("Technical test completed. Waiting for feedback."),
	ptr("Second round interview completed. Moving to final round!"),
	ptr("Great conversation with the team. Culture seems amazing."),
	ptr("Salary expectations discussed. They said it's within range."),
	ptr("System design interview went okay. Could have done better."),
	ptr("Take-home project submitted. Now waiting."),
	ptr("Recruiter reached out on LinkedIn."),
	ptr("Networking event led to this application."),
	ptr("Applied through company website."),
	ptr("Referred by former colleague."),
	ptr("Had coffee chat with team lead."),
	ptr("Negotiating offer details."),
	nil,
}

func ptr(s string) *string { return &s }
