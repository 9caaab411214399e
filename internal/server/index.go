package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// registerIndexRoute serves the embedded client page. The configured API
// key is interpolated into the page body verbatim: any visitor to the root
// page can read it. Acceptable for single-user deployments only.
func registerIndexRoute(router *gin.Engine, apiKey string) {
	page := strings.ReplaceAll(indexPage, "__API_KEY__", apiKey)
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Simple Music & Video Repo</title>
<style>
  body {
    font-family: system-ui, sans-serif;
    background: #fff;
    color: #374151;
    margin: 0; padding: 0; min-height: 100vh;
    display: flex; flex-direction: column; align-items: center; justify-content: flex-start;
  }
  main {
    max-width: 600px;
    width: 100%;
    padding: 2rem;
  }
  h1 {
    font-weight: 700;
    font-size: 2rem;
    margin-bottom: 0.5rem;
  }
  label {
    display: block;
    margin-top: 1.25rem;
    font-weight: 600;
  }
  input[type="file"] {
    margin-top: 0.25rem;
  }
  button {
    margin-top: 0.75rem;
    padding: 0.5rem 1.25rem;
    font-weight: 600;
    background: #111827;
    color: #fff;
    border: none;
    border-radius: 6px;
    cursor: pointer;
    transition: background-color 0.3s ease;
  }
  button:hover {
    background: #374151;
  }
  #apiKey {
    margin-top: 1rem;
    padding: 0.5rem 0;
    font-family: monospace;
    background: #f3f4f6;
    border-radius: 6px;
    text-align: center;
    user-select: all;
  }
  .section {
    margin-top: 2rem;
  }
  .file-list {
    margin-top: 1rem;
    border-top: 1px solid #e5e7eb;
    padding-top: 1rem;
  }
  .file-list-item {
    margin-bottom: 0.75rem;
    word-break: break-all;
  }
  a.file-link {
    color: #2563eb;
    text-decoration: none;
  }
  a.file-link:hover {
    text-decoration: underline;
  }
</style>
</head>
<body>
  <main>
    <h1>Simple Music & Video Repository</h1>
    <p>Your API key (use to access /api/files?apikey=YOUR_API_KEY):</p>
    <div id="apiKey">__API_KEY__</div>

    <section class="section" aria-labelledby="uploadMusicLabel">
      <h2 id="uploadMusicLabel">Upload Music</h2>
      <form id="musicForm" enctype="multipart/form-data">
        <input type="file" name="music" accept="audio/*" required />
        <button type="submit">Upload Music</button>
      </form>
      <div id="musicFiles" class="file-list"></div>
    </section>

    <section class="section" aria-labelledby="uploadVideoLabel">
      <h2 id="uploadVideoLabel">Upload Video</h2>
      <form id="videoForm" enctype="multipart/form-data">
        <input type="file" name="video" accept="video/*" required />
        <button type="submit">Upload Video</button>
      </form>
      <div id="videoFiles" class="file-list"></div>
    </section>
  </main>

  <script>
    const musicForm = document.getElementById('musicForm');
    const videoForm = document.getElementById('videoForm');
    const musicFilesDiv = document.getElementById('musicFiles');
    const videoFilesDiv = document.getElementById('videoFiles');
    const apiKey = document.getElementById('apiKey').textContent;

    async function fetchFiles() {
      try {
        const res = await fetch('/api/files?apikey=' + encodeURIComponent(apiKey));
        if (!res.ok) throw new Error('Failed to fetch files, status '+ res.status);
        const data = await res.json();
        displayFiles(data.music, musicFilesDiv);
        displayFiles(data.videos, videoFilesDiv);
      } catch(e) {
        console.error(e);
      }
    }

    function displayFiles(files, container) {
      if (!files.length) {
        container.innerHTML = '<p>No files uploaded yet.</p>';
        return;
      }
      container.innerHTML = '';
      files.forEach(file => {
        const a = document.createElement('a');
        a.href = file.url;
        a.target = '_blank';
        a.rel = 'noopener noreferrer';
        a.textContent = file.name;
        a.className = 'file-link';
        const div = document.createElement('div');
        div.className = 'file-list-item';
        div.appendChild(a);
        container.appendChild(div);
      });
    }

    function wireUploadForm(form, path) {
      form.addEventListener('submit', async e => {
        e.preventDefault();
        const formData = new FormData(form);
        try {
          const res = await fetch(path, {
            method: 'POST',
            headers: { 'x-api-key': apiKey },
            body: formData
          });
          if (!res.ok) {
            const err = await res.text();
            alert('Upload failed: ' + err);
            return;
          }
          form.reset();
          fetchFiles();
        } catch(err) {
          alert('Upload error');
          console.error(err);
        }
      });
    }

    wireUploadForm(musicForm, '/upload/music');
    wireUploadForm(videoForm, '/upload/video');

    // Initial fetch of uploaded files
    fetchFiles();
  </script>
</body>
</html>`
