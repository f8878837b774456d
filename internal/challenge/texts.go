package challenge

// sampleTexts are the built-in editing buffers challenges draw from.
// They mimic the kind of lines people actually edit in a terminal or
// editor: shell commands, code snippets, config fragments. Word-based
// commands need at least two words, which every entry satisfies.
var sampleTexts = []string{
	"let counter = 0",
	"const result = calculateSum(a, b)",
	"cd /var/www/html",
	"npm install lodash --save",
	"git commit -m 'fix login redirect'",
	"docker run -p 8080:80 nginx",
	"SELECT name FROM users WHERE id = 42",
	"curl -X POST https://api.example.com/v1/items",
	"tar -xzvf backup-2024.tar.gz",
	"export PATH=$HOME/bin:$PATH",
	"python3 -m venv .venv",
	"ssh deploy@staging.internal -p 2222",
	"for i in range(10): print(i)",
	"chmod 644 config.yaml\nchown root config.yaml",
	"echo 'build ok'\nmake test\nmake install",
}

// SampleTexts returns a copy of the built-in sample texts.
func SampleTexts() []string {
	out := make([]string, len(sampleTexts))
	copy(out, sampleTexts)
	return out
}
