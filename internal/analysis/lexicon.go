package analysis

// keywordEntry maps a technology to the substrings that reveal it in a
// repository haystack.
type keywordEntry struct {
	Name    string
	Aliases []string
}

// stackPattern is a named archetype and the technologies that make it up.
type stackPattern struct {
	Name       string
	Components []string
}

// roleEntry is a job role and the skills it asks for.
type roleEntry struct {
	Role   string
	Skills []string
}

// Lexicons are ordered slices so that detection order, and therefore the
// report, is stable between runs. They are never written after init.
var technologyLexicon = []keywordEntry{
	{Name: "React", Aliases: []string{"react", "reactjs", "react-native"}},
	{Name: "Next.js", Aliases: []string{"nextjs", "next.js", "next-js"}},
	{Name: "Vue", Aliases: []string{"vue", "vuejs", "nuxt"}},
	{Name: "Angular", Aliases: []string{"angular"}},
	{Name: "Svelte", Aliases: []string{"svelte", "sveltekit"}},
	{Name: "Vite", Aliases: []string{"vite"}},
	{Name: "Node.js", Aliases: []string{"node", "nodejs", "node.js"}},
	{Name: "Express", Aliases: []string{"express", "expressjs"}},
	{Name: "NestJS", Aliases: []string{"nestjs"}},
	{Name: "TypeScript", Aliases: []string{"typescript"}},
	{Name: "Django", Aliases: []string{"django"}},
	{Name: "Flask", Aliases: []string{"flask"}},
	{Name: "FastAPI", Aliases: []string{"fastapi"}},
	{Name: "Spring", Aliases: []string{"spring", "spring-boot", "springboot"}},
	{Name: "Rails", Aliases: []string{"rails", "ruby-on-rails"}},
	{Name: "Laravel", Aliases: []string{"laravel"}},
	{Name: ".NET", Aliases: []string{"dotnet", ".net", "asp.net"}},
	{Name: "MongoDB", Aliases: []string{"mongodb", "mongo", "mongoose"}},
	{Name: "PostgreSQL", Aliases: []string{"postgres", "postgresql"}},
	{Name: "MySQL", Aliases: []string{"mysql"}},
	{Name: "Redis", Aliases: []string{"redis"}},
	{Name: "GraphQL", Aliases: []string{"graphql", "apollo"}},
	{Name: "Tailwind CSS", Aliases: []string{"tailwind"}},
	{Name: "TensorFlow", Aliases: []string{"tensorflow", "keras"}},
	{Name: "PyTorch", Aliases: []string{"pytorch", "torch"}},
	{Name: "Pandas", Aliases: []string{"pandas"}},
	{Name: "NumPy", Aliases: []string{"numpy"}},
	{Name: "Docker", Aliases: []string{"docker", "dockerfile"}},
	{Name: "Kubernetes", Aliases: []string{"kubernetes", "k8s", "helm"}},
	{Name: "AWS", Aliases: []string{"aws", "lambda", "serverless"}},
	{Name: "Firebase", Aliases: []string{"firebase"}},
	{Name: "Electron", Aliases: []string{"electron"}},
	{Name: "Flutter", Aliases: []string{"flutter"}},
}

var toolLexicon = []keywordEntry{
	{Name: "Docker", Aliases: []string{"docker"}},
	{Name: "Kubernetes", Aliases: []string{"kubernetes", "k8s"}},
	{Name: "Git", Aliases: []string{"git"}},
	{Name: "CI/CD", Aliases: []string{"ci/cd", "github-actions"}},
	{Name: "Terraform", Aliases: []string{"terraform"}},
	{Name: "Ansible", Aliases: []string{"ansible"}},
}

var stackPatterns = []stackPattern{
	{Name: "MERN Stack", Components: []string{"MongoDB", "Express", "React", "Node.js"}},
	{Name: "PERN Stack", Components: []string{"PostgreSQL", "Express", "React", "Node.js"}},
	{Name: "MEAN Stack", Components: []string{"MongoDB", "Express", "Angular", "Node.js"}},
	{Name: "T3 Stack", Components: []string{"Next.js", "TypeScript", "Tailwind CSS", "GraphQL"}},
	{Name: "Data Science", Components: []string{"Python", "Pandas", "NumPy", "Jupyter Notebook", "TensorFlow", "PyTorch"}},
	{Name: "Cloud Native", Components: []string{"Go", "Docker", "Kubernetes", "Terraform"}},
	{Name: "Mobile", Components: []string{"Flutter", "Dart", "Kotlin", "Swift"}},
}

var roleLexicon = []roleEntry{
	{Role: "Frontend Developer", Skills: []string{"React", "Vue", "Angular", "JavaScript", "TypeScript", "CSS"}},
	{Role: "Backend Developer", Skills: []string{"Node.js", "Express", "Django", "Spring", "Go", "Java", "PostgreSQL"}},
	{Role: "Full Stack Developer", Skills: []string{"React", "Node.js", "Express", "MongoDB", "PostgreSQL", "TypeScript"}},
	{Role: "DevOps Engineer", Skills: []string{"Docker", "Kubernetes", "Terraform", "Ansible", "CI/CD", "AWS"}},
	{Role: "Data Scientist", Skills: []string{"Python", "Pandas", "NumPy", "Jupyter Notebook", "TensorFlow"}},
	{Role: "Machine Learning Engineer", Skills: []string{"Python", "TensorFlow", "PyTorch", "Docker"}},
	{Role: "Mobile Developer", Skills: []string{"Flutter", "Dart", "Kotlin", "Swift", "React"}},
	{Role: "Cloud Engineer", Skills: []string{"AWS", "Docker", "Kubernetes", "Terraform", "Go"}},
	{Role: "Systems Programmer", Skills: []string{"Rust", "C", "C++", "Go"}},
}

var (
	testingKeywords = []string{"test", "spec", "jest", "pytest", "cypress", "vitest", "mocha", "unit"}

	automationKeywords = []string{
		"github-actions", "workflow", "ci", "pipeline", "continuous", "deployment",
		"travis", "circleci", "azure-pipelines", "gitlab-ci",
	}

	documentationKeywords = []string{"docs", "documentation", "wiki", "guide", "handbook", "storybook", "readme"}
)
