package prompts

const ExtractJobs = `### SCRAPED TEXT FROM WEBSITE:
{{.page_data}}

### INSTRUCTION:
The scraped text is from the careers page of a company.
Extract the job postings and return valid JSON with the keys: role, experience, skills, description.
If there is more than one posting, return a JSON array. Return ONLY JSON (no extra text).`

const JobEmail = `### JOB DESCRIPTION:
{{.job_description}}

### INSTRUCTION:
You are {{.sender_name}}, {{.sender_title}} at {{.sender_company}} (AI & Software Consulting).
Write a SHORT, well-structured PLAIN TEXT cold email (no markdown, no hashtags, no asterisks).
Include:
- Subject line (single concise line starting with "Subject:")
- Greeting
- One-paragraph intro about {{.sender_company}} and why it is relevant to this job
- A specific value proposition referencing the role and its requirements
- A clear call to action: {{.cta}}
- Polite sign-off with name and title

Tone: {{.tone}}.
Respond ONLY with the email text (no JSON, no labels).`

const Outreach = `You are {{.sender_name}}, {{.sender_title}} at {{.sender_company}} (AI & Software Consulting).
You are writing a cold email to {{.recipient_name}}, {{.recipient_role}} at {{.recipient_company}}.

{{.intent_instruction}}

Write a SHORT, well-structured PLAIN TEXT email (no markdown, no hashtags, no asterisks).
Include:
- Subject line (single concise line starting with "Subject:")
- Greeting addressed to {{.recipient_name}}
- A specific value proposition relevant to a {{.recipient_role}} at {{.recipient_company}}
- A clear call to action: {{.cta}}
- Polite sign-off with name and title

Tone: {{.tone}}. Keep it professional and concise. Respond ONLY with the email text.`

// Instruction fragments keyed by intent tag. The keys double as the set of
// accepted intent values.
var intentInstructions = map[string]string{
	"first_outreach": "This is a first outreach email: introduce yourself and your company in one short paragraph, establish credibility, and make the reason for reaching out obvious.",
	"follow_up":      "This is a follow-up email to an earlier message that received no reply: reference the earlier note briefly, add one new piece of value, and keep it even shorter than a first email.",
	"pitch":          "This is a direct pitch email: lead with the strongest concrete benefit, back it with one proof point, and ask plainly for the next step.",
	"networking":     "This is a networking email: do not sell anything, focus on a genuine shared interest or mutual connection, and propose a low-commitment conversation.",
}

// IntentInstruction returns the instruction fragment for an intent tag.
// The second return value reports whether the intent is recognized.
func IntentInstruction(intent string) (string, bool) {
	s, ok := intentInstructions[intent]
	return s, ok
}

// Intents lists the accepted intent tags.
func Intents() []string {
	return []string{"first_outreach", "follow_up", "pitch", "networking"}
}
