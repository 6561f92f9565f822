package templates

import (
	"context"
	"html/template"
	"io"

	"landing-leads/internal/client"
	"landing-leads/internal/form"
	"landing-leads/internal/models"

	"github.com/a-h/templ"
)

// LandingPage is everything the landing page needs to render.
type LandingPage struct {
	PhoneNumber string
	TeamSizes   []models.TeamSizeOption
	SubmitPath  string

	LabelIdle       string
	LabelSubmitting string
	SuccessTitle    string
	SuccessBody     string
	FallbackError   string
	TransportError  string
	DismissAfterMs  int64
}

// NewLandingPage fills the page with the form copy shared with the Go client.
func NewLandingPage(phone string) LandingPage {
	return LandingPage{
		PhoneNumber:     phone,
		TeamSizes:       models.TeamSizes,
		SubmitPath:      client.SubmitPath,
		LabelIdle:       form.LabelIdle,
		LabelSubmitting: form.LabelSubmitting,
		SuccessTitle:    form.SuccessTitle,
		SuccessBody:     form.SuccessBody,
		FallbackError:   form.FallbackError,
		TransportError:  form.TransportError,
		DismissAfterMs:  form.DismissAfter.Milliseconds(),
	}
}

// Landing renders the full page.
func Landing(p LandingPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return landingTmpl.ExecuteTemplate(w, "landing", p)
	})
}

// Inlined as html/template so the page builds without `templ generate`.
var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Best Website Design Company · Get a FREE Quote</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-white">

<div id="success-popup" class="hidden fixed inset-0 bg-black bg-opacity-50 flex items-center justify-center z-50 p-4">
  <div class="bg-white rounded-2xl shadow-2xl p-8 max-w-md w-full">
    <div class="text-center">
      <div class="mx-auto flex items-center justify-center h-16 w-16 rounded-full bg-green-100 mb-4">
        <svg class="h-10 w-10 text-[#00A651]" fill="none" stroke="currentColor" viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg">
          <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M5 13l4 4L19 7"></path>
        </svg>
      </div>
      <h3 class="text-2xl font-bold text-gray-900 mb-2">{{.SuccessTitle}}</h3>
      <p class="text-gray-600 mb-6">{{.SuccessBody}}</p>
      <button type="button" id="success-close" class="w-full bg-[#00A651] text-white font-bold py-3 px-6 rounded-lg hover:bg-green-600 transition-colors shadow-lg">Close</button>
    </div>
  </div>
</div>

<div class="container mx-auto px-4 py-4 lg:py-6 max-w-7xl">
  <div class="grid lg:grid-cols-2 gap-6 lg:gap-8 items-start">

    <div class="space-y-3">
      <div class="inline-block">
        <span class="bg-gradient-to-r from-red-500 to-red-600 text-white px-3 py-1.5 rounded-full text-xs font-medium shadow-md">#1 Web Design &amp; Development Company</span>
      </div>

      <h1 class="text-2xl lg:text-3xl xl:text-4xl text-black font-bold leading-tight">
        Boost Your Course Sales by <span class="text-[#FF0000]">10X</span> with the <span class="text-[#FF0000]">Best Website Design Company</span>
      </h1>

      <div class="inline-block bg-[#00A651] text-white px-4 py-2 rounded-lg font-bold text-base shadow-lg">Starting from ₹4,999/- + GST</div>

      <p class="text-gray-600 text-sm leading-relaxed">
        Transform your business with a stunning, high-converting website designed by experts.
        We create custom solutions that drive results and help you stand out in the digital world.
      </p>

      <div class="grid grid-cols-2 gap-2 py-2">
        <div class="flex items-center space-x-2 bg-gray-50 p-2 rounded-lg"><span class="text-xl">🏆</span><span class="font-semibold text-gray-800 text-xs">Award Winning Team</span></div>
        <div class="flex items-center space-x-2 bg-gray-50 p-2 rounded-lg"><span class="text-xl">💼</span><span class="font-semibold text-gray-800 text-xs">4+ Years of Expertise</span></div>
        <div class="flex items-center space-x-2 bg-gray-50 p-2 rounded-lg"><span class="text-xl">⏰</span><span class="font-semibold text-gray-800 text-xs">24/7 Support</span></div>
        <div class="flex items-center space-x-2 bg-gray-50 p-2 rounded-lg"><span class="text-xl">⭐</span><span class="font-semibold text-gray-800 text-xs">Top Quality Work</span></div>
      </div>

      <div class="bg-gradient-to-r from-red-50 to-green-50 border-l-4 border-[#FF0000] p-3 rounded-lg">
        <p class="text-sm font-semibold text-gray-800">
          Let&#39;s Discuss On Call at <a href="tel:+91{{.PhoneNumber}}" class="text-[#00A651] hover:underline">+91 {{.PhoneNumber}}</a>
        </p>
      </div>
    </div>

    <div class="space-y-4">
      <div class="bg-white rounded-xl shadow-xl p-5 border border-gray-100">
        <form id="lead-form" class="space-y-3">
          <div>
            <label for="fullName" class="block text-xs font-medium text-gray-700 mb-1">Full Name *</label>
            <input type="text" id="fullName" name="fullName" required placeholder="Enter your full name"
              class="w-full px-3 py-2 border text-gray-500 border-gray-300 rounded-lg outline-none text-sm">
          </div>

          <div>
            <label for="email" class="block text-xs font-medium text-gray-700 mb-1">Email Id *</label>
            <input type="email" id="email" name="email" required placeholder="your@email.com"
              class="w-full px-3 py-2 border text-gray-500 border-gray-300 rounded-lg outline-none text-sm">
          </div>

          <div>
            <label for="contactNumber" class="block text-xs font-medium text-gray-700 mb-1">Contact Number *</label>
            <div class="flex">
              <span class="inline-flex items-center px-3 py-2 bg-gray-100 border border-r-0 border-gray-300 rounded-l-lg text-gray-700 font-medium text-sm">🇮🇳 +91</span>
              <input type="tel" id="contactNumber" name="contactNumber" required pattern="[0-9]{10}" placeholder="1234567890"
                class="flex-1 px-3 py-2 border text-gray-500 border-gray-300 rounded-r-lg outline-none text-sm">
            </div>
          </div>

          <div>
            <label for="location" class="block text-xs font-medium text-gray-700 mb-1">Your Location *</label>
            <input type="text" id="location" name="location" required placeholder="City, State"
              class="w-full px-3 py-2 border text-gray-500 border-gray-300 rounded-lg outline-none text-sm">
          </div>

          <div>
            <label for="businessName" class="block text-xs font-medium text-gray-700 mb-1">Your Business Name</label>
            <input type="text" id="businessName" name="businessName" placeholder="Company or business name"
              class="w-full px-3 py-2 border text-gray-500 border-gray-300 rounded-lg outline-none text-sm">
          </div>

          <div>
            <label for="teamSize" class="block text-xs font-medium text-gray-700 mb-1">Your Company Team Size</label>
            <select id="teamSize" name="teamSize" class="w-full px-3 py-2 border border-gray-300 text-gray-500 rounded-lg outline-none bg-white text-sm">
              <option value="">Select team size</option>
              {{- range .TeamSizes}}
              <option value="{{.Value}}">{{.Label}}</option>
              {{- end}}
            </select>
          </div>

          <button type="submit" id="submit-button"
            class="w-full bg-[#00A651] text-white font-bold py-3 rounded-lg hover:bg-green-600 transition-colors shadow-lg mt-4 text-sm disabled:bg-gray-400 disabled:cursor-not-allowed">{{.LabelIdle}}</button>
        </form>
      </div>
    </div>
  </div>
</div>

<div class="container mx-auto px-4 py-8 max-w-4xl">
  <div class="grid grid-cols-1 md:grid-cols-3 gap-6">
    <div class="bg-white rounded-xl p-8 text-center shadow-2xl border-2 border-gray-200"><div class="text-5xl font-bold text-[#00A651] mb-3">4.9⭐</div><div class="text-base text-gray-700 font-semibold">Ratings</div></div>
    <div class="bg-white rounded-xl p-8 text-center shadow-2xl border-2 border-gray-200"><div class="text-5xl font-bold text-[#00A651] mb-3">4+</div><div class="text-base text-gray-700 font-semibold">Years Experience</div></div>
    <div class="bg-white rounded-xl p-8 text-center shadow-2xl border-2 border-gray-200"><div class="text-5xl font-bold text-[#00A651] mb-3">10+</div><div class="text-base text-gray-700 font-semibold">Projects</div></div>
  </div>
</div>

<a href="https://wa.me/91{{.PhoneNumber}}" target="_blank" rel="noopener noreferrer" aria-label="Chat on WhatsApp"
  class="fixed bottom-4 right-4 bg-[#25D366] text-white w-12 h-12 rounded-full shadow-xl flex items-center justify-center z-50">
  <svg class="w-6 h-6" fill="currentColor" viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><path d="M12.05 0C5.495 0 .16 5.335.157 11.892c0 2.096.547 4.142 1.588 5.945L.057 24l6.305-1.654a11.882 11.882 0 005.683 1.448h.005c6.554 0 11.89-5.335 11.893-11.893A11.821 11.821 0 0012.05 0z"/></svg>
</a>

<script>
(function () {
  var submitPath = {{.SubmitPath}};
  var labelIdle = {{.LabelIdle}};
  var labelSubmitting = {{.LabelSubmitting}};
  var fallbackError = {{.FallbackError}};
  var transportError = {{.TransportError}};
  var dismissAfter = {{.DismissAfterMs}};

  var form = document.getElementById("lead-form");
  var button = document.getElementById("submit-button");
  var popup = document.getElementById("success-popup");
  var hideTimer = null;

  function hidePopup() {
    if (hideTimer !== null) {
      clearTimeout(hideTimer);
      hideTimer = null;
    }
    popup.classList.add("hidden");
  }

  function showPopup() {
    hidePopup();
    popup.classList.remove("hidden");
    hideTimer = setTimeout(hidePopup, dismissAfter);
  }

  document.getElementById("success-close").addEventListener("click", hidePopup);

  form.addEventListener("submit", function (e) {
    e.preventDefault();
    if (button.disabled) {
      return;
    }
    button.disabled = true;
    button.textContent = labelSubmitting;

    var data = {};
    new FormData(form).forEach(function (value, key) {
      data[key] = value;
    });

    fetch(submitPath, {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(data)
    })
      .then(function (response) {
        return response.json().then(function (body) {
          if (response.ok) {
            form.reset();
            showPopup();
          } else {
            alert("Error: " + (body.error || fallbackError));
          }
        });
      })
      .catch(function (err) {
        console.error("Error submitting form:", err);
        alert(transportError);
      })
      .finally(function () {
        button.disabled = false;
        button.textContent = labelIdle;
      });
  });
})();
</script>
</body>
</html>
`))
