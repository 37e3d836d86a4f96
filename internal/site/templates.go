package site

// pageTemplate is the html/template for the portfolio page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Name}}{{if .Headline}} | {{.Headline}}{{end}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body data-live="{{.Live}}">
  <div class="progress-bar" id="progress-bar" style="width: {{printf "%.2f" .State.Progress}}%"></div>

  <nav class="top-nav">
    <div class="nav-inner">
      <div class="brand">{{.Name}}</div>
      <div class="nav-links">
        {{range .Nav}}<a href="#{{.ID}}" data-section="{{.ID}}" class="nav-link{{if .Active}} active{{end}}">{{.Label}}</a>
        {{end}}
      </div>
    </div>
  </nav>

  <section id="home" class="hero">
    <div class="section-container">
      {{with .HeroPortrait}}<div class="portrait"><img src="{{.URL}}" alt="{{.Alt}}"></div>{{end}}
      <h1>{{.Name}}</h1>
      {{if .Headline}}<p class="headline">{{.Headline}}</p>{{end}}
      <div class="summary">{{.Summary}}</div>
      <div class="hero-actions">
        {{with .Contact.MailtoURI}}<a class="button" href="{{.}}">Get in touch</a>{{end}}
        <a class="button secondary" href="#about" data-section="about">Learn more</a>
      </div>
    </div>
  </section>

  <section id="about" class="section-container alt">
    <h2 class="section-title">About Me</h2>
    <div class="about-grid">
      {{with .About.Portrait}}<img class="about-portrait" src="{{.URL}}" alt="{{.Alt}}">{{end}}
      <div>
        <div class="prose">{{.About.Body}}</div>
        {{if .About.Highlights}}<ul class="highlights">{{range .About.Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
        <div class="contact-chips">
          {{with .Contact.GitHub}}<a href="{{.}}" rel="noopener" target="_blank">GitHub</a>{{end}}
          {{with .Contact.LinkedIn}}<a href="{{.}}" rel="noopener" target="_blank">LinkedIn</a>{{end}}
          {{with .Contact.Medium}}<a href="{{.}}" rel="noopener" target="_blank">Medium</a>{{end}}
          {{with .Contact.TelURI}}<a href="{{.}}">Call</a>{{end}}
        </div>
      </div>
    </div>
    {{if .About.Images}}<div class="strip">{{range .About.Images}}<img src="{{.URL}}" alt="{{.Alt}}" loading="lazy">{{end}}</div>{{end}}
  </section>

  {{if .Show.skills}}
  <section id="skills" class="section-container">
    <h2 class="section-title">Technical Skills</h2>
    <div class="grid two">
      {{range .Skills}}
      <div>
        <h3>{{.Title}}</h3>
        <ul class="dots">{{range .Items}}<li>{{.}}</li>{{end}}</ul>
      </div>
      {{end}}
    </div>
    {{if .Tools}}<h3>Tools &amp; Platforms</h3>
    <div class="pills">{{range .Tools}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}
  </section>
  {{end}}

  {{if .Show.projects}}
  <section id="projects" class="section-container alt">
    <h2 class="section-title">Featured Projects</h2>
    <div class="grid two">
      {{range .Projects}}
      <article class="card">
        {{with .Image}}<img src="{{.URL}}" alt="{{.Alt}}" loading="lazy">{{end}}
        <h3>{{if .Link}}<a href="{{.Link}}" rel="noopener" target="_blank">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
        <div class="prose">{{.Description}}</div>
        {{if .Features}}<h4>Key Features</h4><ul class="dots">{{range .Features}}<li>{{.}}</li>{{end}}</ul>{{end}}
        {{if .Tech}}<div class="pills">{{range .Tech}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}
      </article>
      {{end}}
    </div>
  </section>
  {{end}}

  {{if .Show.experience}}
  <section id="experience" class="section-container">
    <h2 class="section-title">Professional Experience</h2>
    {{range .Experience}}
    <article class="timeline-item">
      <h3>{{.Role}}</h3>
      <p class="meta">{{.Company}}{{if .Period}} · {{.Period}}{{end}}</p>
      {{if .Points}}<ul class="dots">{{range .Points}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </article>
    {{end}}
  </section>
  {{end}}

  {{if .Show.education}}
  <section id="education" class="section-container alt">
    <h2 class="section-title">Education</h2>
    {{range .Education}}
    <article class="timeline-item">
      <h3>{{.Title}}</h3>
      <p class="meta">{{.Institution}}{{if .Period}} · {{.Period}}{{end}}</p>
      {{if .Details}}<ul class="dots">{{range .Details}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </article>
    {{end}}
  </section>
  {{end}}

  {{if .Show.leadership}}
  <section id="leadership" class="section-container">
    <h2 class="section-title">Leadership &amp; Sports</h2>
    <div class="grid two">
      {{range .Leadership}}{{template "card" .}}{{end}}
    </div>
  </section>
  {{end}}

  {{if .Show.interests}}
  <section id="interests" class="section-container alt">
    <h2 class="section-title">Interests &amp; Hobbies</h2>
    <div class="grid two">
      {{range .Interests.Cards}}{{template "card" .}}{{end}}
    </div>
    {{if .Interests.Other}}<h3>Other Interests</h3><ul class="dots">{{range .Interests.Other}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </section>
  {{end}}

  {{if .Show.gallery}}
  <section id="gallery" class="section-container">
    <h2 class="section-title">Gallery</h2>
    <div class="grid three">
      {{range .Gallery}}
      <figure class="tile">
        <img{{with .Image}} src="{{.URL}}"{{end}} alt="{{.Title}}" loading="lazy">
        {{if .Title}}<figcaption><strong>{{.Title}}</strong>{{if .Category}}<span>{{.Category}}</span>{{end}}</figcaption>{{end}}
      </figure>
      {{end}}
    </div>
  </section>
  {{end}}

  <section id="contact" class="section-container alt">
    <h2 class="section-title">Get In Touch</h2>
    <div class="grid two contact">
      {{with .Contact.MailtoURI}}<a class="card" href="{{.}}"><h3>Email</h3><p>{{$.Contact.Email}}</p></a>{{end}}
      {{with .Contact.TelURI}}<a class="card" href="{{.}}"><h3>Phone</h3><p>{{$.Contact.Phone}}</p></a>{{end}}
      {{with .Contact.GitHub}}<a class="card" href="{{.}}" rel="noopener" target="_blank"><h3>GitHub</h3><p>{{.}}</p></a>{{end}}
      {{with .Contact.LinkedIn}}<a class="card" href="{{.}}" rel="noopener" target="_blank"><h3>LinkedIn</h3><p>{{.}}</p></a>{{end}}
    </div>
  </section>

  <footer class="footer">© {{.Name}}</footer>
  <script src="script.js"></script>
</body>
</html>
{{define "card"}}
<article class="card">
  {{with .Image}}<img src="{{.URL}}" alt="{{.Alt}}" loading="lazy">{{end}}
  <h3>{{.Title}}</h3>
  {{if .Subtitle}}<p class="meta">{{.Subtitle}}</p>{{end}}
  {{if .Description}}<p>{{.Description}}</p>{{end}}
</article>
{{end}}`

const cssContent = `:root {
  --bg: #0b1120;
  --bg-alt: #111a2e;
  --text: #e2e8f0;
  --muted: #94a3b8;
  --accent: #3b82f6;
  --accent-2: #60a5fa;
  --border: #1e293b;
  --nav-height: 64px;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; background: var(--bg); color: var(--text); line-height: 1.6; }
a { color: var(--accent-2); text-decoration: none; }
img { max-width: 100%; display: block; }

.progress-bar { position: fixed; top: 0; left: 0; height: 4px; background: linear-gradient(90deg, var(--accent-2), var(--accent)); z-index: 50; transition: width 80ms linear; }

.top-nav { position: fixed; top: 0; left: 0; right: 0; height: var(--nav-height); background: rgba(11, 17, 32, 0.95); backdrop-filter: blur(6px); border-bottom: 1px solid var(--border); z-index: 40; }
.nav-inner { max-width: 1200px; margin: 0 auto; height: 100%; display: flex; align-items: center; justify-content: space-between; padding: 0 1.5rem; }
.brand { font-weight: 700; font-size: 1.3rem; }
.nav-links { display: flex; gap: 1.5rem; }
.nav-link { color: var(--muted); text-transform: capitalize; font-size: 0.9rem; font-weight: 500; }
.nav-link.active, .nav-link:hover { color: var(--accent-2); }
@media (max-width: 900px) { .nav-links { display: none; } }

.section-container { max-width: 1200px; margin: 0 auto; padding: 5rem 1.5rem; scroll-margin-top: var(--nav-height); }
.alt { background: var(--bg-alt); max-width: none; }
.alt > * { max-width: 1200px; margin-left: auto; margin-right: auto; }
.section-title { font-size: 2.25rem; margin: 0 0 2.5rem; text-align: center; }

.hero { min-height: 100vh; display: flex; align-items: center; text-align: center; padding-top: var(--nav-height); }
.portrait { width: 160px; height: 160px; margin: 0 auto 2rem; border-radius: 50%; border: 4px solid var(--accent); overflow: hidden; }
.portrait img { width: 100%; height: 100%; object-fit: cover; }
.hero h1 { font-size: clamp(2.5rem, 6vw, 4.5rem); margin: 0 0 1rem; }
.headline { font-size: 1.6rem; color: var(--accent-2); margin: 0 0 1.5rem; }
.summary { color: var(--muted); max-width: 42rem; margin: 0 auto 2.5rem; font-size: 1.15rem; }
.button { display: inline-block; padding: 0.75rem 1.75rem; border-radius: 999px; background: var(--accent); color: #fff; margin: 0 0.5rem; }
.button.secondary { background: transparent; border: 1px solid var(--accent); color: var(--accent-2); }

.about-grid { display: grid; grid-template-columns: 1fr 2fr; gap: 3rem; align-items: start; }
.about-portrait { border-radius: 12px; }
@media (max-width: 800px) { .about-grid { grid-template-columns: 1fr; } }
.highlights { padding-left: 1.2rem; }
.contact-chips { display: flex; gap: 1rem; flex-wrap: wrap; margin-top: 1.5rem; }
.strip { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1rem; margin-top: 2.5rem; }
.strip img { border-radius: 8px; height: 180px; width: 100%; object-fit: cover; }

.grid { display: grid; gap: 2rem; }
.grid.two { grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); }
.grid.three { grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
.card { display: block; background: var(--bg); border: 1px solid var(--border); border-radius: 12px; padding: 1.5rem; color: var(--text); transition: box-shadow 0.2s; }
.card:hover { box-shadow: 0 8px 24px rgba(59, 130, 246, 0.15); }
.card img { border-radius: 8px; height: 12rem; width: 100%; object-fit: cover; margin-bottom: 1rem; }
.card h3 { margin: 0 0 0.5rem; }
.meta { color: var(--muted); margin: 0 0 0.75rem; }
.dots { list-style: none; padding: 0; }
.dots li::before { content: ""; display: inline-block; width: 6px; height: 6px; border-radius: 50%; background: var(--accent-2); margin-right: 0.6rem; vertical-align: middle; }
.pills { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-top: 1rem; }
.pill { padding: 0.3rem 0.9rem; border-radius: 999px; border: 1px solid rgba(59, 130, 246, 0.3); color: var(--accent-2); font-size: 0.85rem; }
.timeline-item { border-left: 2px solid var(--accent); padding-left: 1.5rem; margin-bottom: 2.5rem; }
.timeline-item h3 { margin: 0; }

.tile { position: relative; margin: 0; height: 16rem; overflow: hidden; border-radius: 10px; background: var(--bg-alt); }
.tile img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.3s; }
.tile:hover img { transform: scale(1.08); }
.tile figcaption { position: absolute; inset: auto 0 0 0; padding: 1rem; background: linear-gradient(transparent, rgba(0, 0, 0, 0.8)); display: flex; flex-direction: column; opacity: 0; transition: opacity 0.3s; }
.tile:hover figcaption { opacity: 1; }
.tile figcaption span { color: var(--accent-2); font-size: 0.85rem; }

.footer { text-align: center; padding: 2rem; color: var(--muted); border-top: 1px solid var(--border); }
`

// jsContent reports scroll geometry to the server over /live and applies the
// state it sends back. Without a live connection (static export, or the
// socket dropped) it computes the same state locally.
const jsContent = `(function() {
  var THRESHOLD = 200;
  var bar = document.getElementById('progress-bar');
  var links = Array.prototype.slice.call(document.querySelectorAll('.nav-link[data-section]'));
  var ids = links.map(function(l) { return l.getAttribute('data-section'); });
  var local = { progress: 0, active: ids[0] || '' };
  var ws = null;

  function apply(state) {
    bar.style.width = state.progress + '%';
    links.forEach(function(l) {
      l.classList.toggle('active', l.getAttribute('data-section') === state.active);
    });
  }

  function geometry() {
    var sections = [];
    ids.forEach(function(id) {
      var el = document.getElementById(id);
      if (el) sections.push({ id: id, top: el.getBoundingClientRect().top });
    });
    return {
      type: 'scroll',
      viewport: {
        height: window.innerHeight,
        documentHeight: document.documentElement.scrollHeight,
        scrollTop: window.scrollY
      },
      sections: sections
    };
  }

  function computeLocal(g) {
    var total = g.viewport.documentHeight - g.viewport.height;
    var p = total > 0 ? g.viewport.scrollTop / total * 100 : 0;
    var active = local.active;
    g.sections.forEach(function(s) { if (s.top <= THRESHOLD) active = s.id; });
    return { progress: Math.min(100, Math.max(0, p)), active: active };
  }

  function live() { return ws && ws.readyState === 1; }

  if (document.body.getAttribute('data-live') === 'true' && 'WebSocket' in window) {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    ws = new WebSocket(proto + '//' + location.host + '/live');
    ws.onopen = function() { ws.send(JSON.stringify(geometry())); };
    ws.onmessage = function(e) {
      var msg = JSON.parse(e.data);
      if (msg.type === 'state') {
        local = { progress: msg.progress, active: msg.active };
        apply(local);
      } else if (msg.type === 'scrollTo') {
        var el = document.getElementById(msg.section);
        if (el) el.scrollIntoView({ behavior: 'smooth' });
      }
    };
    ws.onclose = function() { ws = null; };
  }

  window.addEventListener('scroll', function() {
    var g = geometry();
    if (live()) {
      ws.send(JSON.stringify(g));
      return;
    }
    local = computeLocal(g);
    apply(local);
  });

  document.querySelectorAll('[data-section]').forEach(function(l) {
    l.addEventListener('click', function(e) {
      var id = l.getAttribute('data-section');
      e.preventDefault();
      if (live()) {
        ws.send(JSON.stringify({ type: 'navigate', section: id }));
        return;
      }
      var el = document.getElementById(id);
      if (!el) return;
      el.scrollIntoView({ behavior: 'smooth' });
      local.active = id;
      apply(local);
    });
  });
})();
`
